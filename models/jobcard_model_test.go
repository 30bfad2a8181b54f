package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageListHas(t *testing.T) {
	assert.True(t, StageList("1").Has("1"))
	assert.True(t, StageList("1,3").Has("1"))
	assert.True(t, StageList("1,3").Has("3"))
	assert.False(t, StageList("1,3").Has("2"))

	// Membership is boundary aware over the delimiters.
	assert.False(t, StageList("13").Has("3"))
	assert.False(t, StageList("13").Has("1"))
	assert.True(t, StageList("13").Has("13"))

	assert.True(t, StageList("1, 3").Has("3"))
	assert.False(t, StageList("").Has("1"))
	assert.False(t, StageList("1,3").Has(""))
}

func TestStageListList(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, StageList("1,2,3").List())
	assert.Equal(t, []string{"1", "3"}, StageList(" 1 , 3 ").List())
	assert.Nil(t, StageList("").List())
	assert.Equal(t, []string{"2"}, StageList("2,").List())
}
