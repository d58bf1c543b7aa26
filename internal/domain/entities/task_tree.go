package entities

import (
	"math"
	"sort"
)

// TaskNode is one node of the nested task display tree.
type TaskNode struct {
	Task     *Task
	Children []*TaskNode
}

// BuildTaskTree assembles a flat task list into a forest. A task whose
// parent is missing from the input (filtered out by a search or status
// filter) is unreachable and dropped. Siblings are ordered by priority,
// high first, keeping input order between equal priorities.
func BuildTaskTree(tasks []*Task) []*TaskNode {
	nodes := make(map[uint]*TaskNode, len(tasks))
	for _, t := range tasks {
		nodes[t.Id] = &TaskNode{Task: t}
	}

	var roots []*TaskNode
	for _, t := range tasks {
		node := nodes[t.Id]
		if t.ParentId == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*t.ParentId]
		if !ok {
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	sortSiblings(roots)
	for _, node := range nodes {
		sortSiblings(node.Children)
	}
	return roots
}

func sortSiblings(nodes []*TaskNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Task.Priority.Rank() < nodes[j].Task.Priority.Rank()
	})
}

// FindNode locates the node for a task id anywhere in the forest.
func FindNode(forest []*TaskNode, taskId uint) *TaskNode {
	for _, node := range forest {
		if node.Task.Id == taskId {
			return node
		}
		if found := FindNode(node.Children, taskId); found != nil {
			return found
		}
	}
	return nil
}

// SetCompletion sets the completion state of the node's task and every
// descendant, depth-first, overwriting whatever state the subtasks had.
// The caller persists the mutated tasks.
func (n *TaskNode) SetCompletion(completed bool) {
	n.Task.Completed = completed
	for _, child := range n.Children {
		child.SetCompletion(completed)
	}
}

// Flatten returns the node's task followed by all descendants, depth-first.
func (n *TaskNode) Flatten() []*Task {
	tasks := []*Task{n.Task}
	for _, child := range n.Children {
		tasks = append(tasks, child.Flatten()...)
	}
	return tasks
}

// Progress is the percentage of completed tasks in a project, counted
// flat over all tasks, rounded to the nearest integer. 0 for an empty
// project.
func Progress(tasks []*Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(tasks))))
}
