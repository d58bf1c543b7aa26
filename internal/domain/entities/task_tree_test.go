package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint {
	return &v
}

func TestBuildTaskTreeNestsSubtasks(t *testing.T) {
	tasks := []*Task{
		{Id: 1, Title: "Buy milk", Priority: PriorityHigh},
		{Id: 2, Title: "Buy 2% milk", Priority: PriorityMedium, ParentId: uintPtr(1)},
		{Id: 3, Title: "Clean house", Priority: PriorityLow},
	}

	forest := BuildTaskTree(tasks)

	require.Len(t, forest, 2)
	assert.Equal(t, "Buy milk", forest[0].Task.Title)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "Buy 2% milk", forest[0].Children[0].Task.Title)
	assert.Empty(t, forest[1].Children)
}

func TestBuildTaskTreeOrdersSiblingsByPriority(t *testing.T) {
	tasks := []*Task{
		{Id: 1, Title: "low first", Priority: PriorityLow},
		{Id: 2, Title: "medium a", Priority: PriorityMedium},
		{Id: 3, Title: "high", Priority: PriorityHigh},
		{Id: 4, Title: "medium b", Priority: PriorityMedium},
	}

	forest := BuildTaskTree(tasks)

	require.Len(t, forest, 4)
	assert.Equal(t, "high", forest[0].Task.Title)
	// Equal priorities keep insertion order.
	assert.Equal(t, "medium a", forest[1].Task.Title)
	assert.Equal(t, "medium b", forest[2].Task.Title)
	assert.Equal(t, "low first", forest[3].Task.Title)
}

func TestBuildTaskTreeDropsOrphans(t *testing.T) {
	// Parent 1 was filtered out of the input set, so its subtask is
	// unreachable and must not appear anywhere in the tree.
	tasks := []*Task{
		{Id: 2, Title: "orphan", Priority: PriorityMedium, ParentId: uintPtr(1)},
		{Id: 3, Title: "root", Priority: PriorityMedium},
	}

	forest := BuildTaskTree(tasks)

	require.Len(t, forest, 1)
	assert.Equal(t, "root", forest[0].Task.Title)
	assert.Nil(t, FindNode(forest, 2))
}

func TestSetCompletionCascadesToAllDescendants(t *testing.T) {
	tasks := []*Task{
		{Id: 1, Title: "root", Priority: PriorityMedium},
		{Id: 2, Title: "child", Priority: PriorityMedium, ParentId: uintPtr(1)},
		{Id: 3, Title: "grandchild", Priority: PriorityMedium, ParentId: uintPtr(2), Completed: false},
		{Id: 4, Title: "done child", Priority: PriorityMedium, ParentId: uintPtr(1), Completed: true},
	}

	forest := BuildTaskTree(tasks)
	root := FindNode(forest, 1)
	require.NotNil(t, root)

	root.SetCompletion(true)
	for _, task := range root.Flatten() {
		assert.True(t, task.Completed, "task %d should be completed", task.Id)
	}

	// The cascade overwrites in both directions.
	root.SetCompletion(false)
	for _, task := range root.Flatten() {
		assert.False(t, task.Completed, "task %d should be incomplete", task.Id)
	}
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 0, Progress(nil))

	tasks := []*Task{
		{Id: 1, Completed: true},
		{Id: 2, Completed: false},
		{Id: 3, Completed: false},
	}
	assert.Equal(t, 33, Progress(tasks))

	tasks[1].Completed = true
	assert.Equal(t, 67, Progress(tasks))

	tasks[2].Completed = true
	assert.Equal(t, 100, Progress(tasks))
}
