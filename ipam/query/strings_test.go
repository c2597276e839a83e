package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack/networking-infoblox/ipam/errors"
)

func TestSplitList(t *testing.T) {
	_, err := SplitList("", "")
	assert.True(t, errors.IsErrInvalidArgument(err))
	_, err = SplitList("key", "")
	assert.True(t, errors.IsErrInvalidArgument(err))

	list, err := SplitList("1,3,5,7,9", ":")
	require.NoError(t, err)
	assert.Equal(t, []string{"1,3,5,7,9"}, list)

	list, err = SplitList("1,3,5,7,9", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, list)

	list, err = SplitList("k1:v1, k2:v2, k3:v3", ",")
	require.NoError(t, err)
	assert.Equal(t, []string{"k1:v1", "k2:v2", "k3:v3"}, list)
}

func TestSplitPairs(t *testing.T) {
	_, err := SplitPairs("k1:v1", ",", "")
	assert.True(t, errors.IsErrInvalidArgument(err))

	pairs, err := SplitPairs("k1:v1, k2:v2, k3:v3", ",", ":")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"k1", "v1"}, {"k2", "v2"}, {"k3", "v3"}}, pairs)
}

func TestStripSpaces(t *testing.T) {
	assert.Equal(t, "", StripSpaces(""))
	assert.Equal(t, "", StripSpaces("   "))
	assert.Equal(t, "add", StripSpaces("\nadd"))
	assert.Equal(t, "abcde", StripSpaces(" ab cd  \ne "))
}
