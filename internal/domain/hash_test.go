package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobHashIgnoresMetadata(t *testing.T) {
	a, err := ParseJob("0 3 * * * backup.sh # first comment")
	require.NoError(t, err)
	b, err := ParseJob("0 3 * * * backup.sh >> /tmp/b.log 2>> /tmp/b.err # another comment")
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Len(t, a.Hash(), HashSize)

	b.SetComment("changed")
	b.SetLastRunTime(b.LastRunTime().AddDate(1, 0, 0))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestJobHashFollowsIdentityFields(t *testing.T) {
	job, err := ParseJob("0 3 * * * backup.sh")
	require.NoError(t, err)
	before := job.Hash()

	require.NoError(t, job.SetCommand("restore.sh"))
	afterCommand := job.Hash()
	assert.NotEqual(t, before, afterCommand)

	require.NoError(t, job.SetMinute("5"))
	assert.NotEqual(t, afterCommand, job.Hash())

	require.NoError(t, job.SetMinute("0"))
	require.NoError(t, job.SetCommand("backup.sh"))
	assert.Equal(t, before, job.Hash())
}

func TestSpecialJobHash(t *testing.T) {
	daily, err := ParseJob("@daily cmd")
	require.NoError(t, err)
	midnight, err := ParseJob("@midnight cmd")
	require.NoError(t, err)
	again, err := ParseJob("@daily cmd # same job")
	require.NoError(t, err)

	assert.NotEqual(t, daily.Hash(), midnight.Hash())
	assert.Equal(t, daily.Hash(), again.Hash())
}

func TestVariableHash(t *testing.T) {
	a, err := NewVariable("MAILTO", "root")
	require.NoError(t, err)
	b, err := ParseVariable("MAILTO = root")
	require.NoError(t, err)
	c, err := NewVariable("MAILTO", "admin")
	require.NoError(t, err)

	assert.Equal(t, a.Hash(), b.Hash())
	assert.NotEqual(t, a.Hash(), c.Hash())
}

func TestShortHash(t *testing.T) {
	assert.Equal(t, "abc", ShortHash("abc"))
	assert.Equal(t, "0123456789ab", ShortHash("0123456789abcdef"))
}
