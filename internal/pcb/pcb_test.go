package pcb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactory_New(t *testing.T) {
	f := NewFactory()

	p1 := f.New(0, 4)
	assert.Equal(t, 1, p1.PID)
	assert.Equal(t, 0, p1.Start)
	assert.Equal(t, 4, p1.End)
	assert.Equal(t, 0, p1.PC)
	assert.Equal(t, 5, p1.JobTime)
	assert.Equal(t, 5, p1.JobLengthScore)

	p2 := f.New(5, 5)
	assert.Equal(t, 2, p2.PID)
	assert.Equal(t, 1, p2.JobTime)
}

func TestFactory_EmptyProgram(t *testing.T) {
	f := NewFactory()
	p := f.New(3, 2) // end == start-1
	assert.Equal(t, 0, p.JobTime)
	assert.True(t, p.Done())
}

func TestPCB_Age(t *testing.T) {
	p := NewFactory().New(0, 1) // JobLengthScore starts at 2
	p.Age()
	assert.Equal(t, 1, p.JobLengthScore)
	p.Age()
	assert.Equal(t, 0, p.JobLengthScore)
	p.Age()
	assert.Equal(t, 0, p.JobLengthScore, "score must not go below 0")
}

func TestPCB_Done(t *testing.T) {
	p := NewFactory().New(0, 1)
	assert.False(t, p.Done())
	p.PC = 1
	assert.False(t, p.Done())
	p.PC = 2
	assert.True(t, p.Done())
}
