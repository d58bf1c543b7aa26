package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/bearh141/todo-list/internal/application/common"
)

// ExportCSV writes every task of the project as one CSV row. Due dates
// are ISO dates or empty, the parent id column is empty for root tasks
// and tag names are comma-joined.
func (s *ProjectService) ExportCSV(ctx context.Context, userId, projectId uint, w io.Writer) error {
	project, err := s.findProject(ctx, projectId)
	if err != nil {
		return err
	}

	if _, err := s.permissions.RequireView(ctx, project, userId); err != nil {
		return err
	}

	tasks, err := s.taskRepo.FindByProject(ctx, projectId)
	if err != nil {
		return common.Persistence("task list", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "title", "description", "due_date", "completed", "priority", "parent_id", "tags"}); err != nil {
		return err
	}

	for _, task := range tasks {
		dueDate := ""
		if task.DueDate != nil {
			dueDate = task.DueDate.Format("2006-01-02")
		}
		parentId := ""
		if task.ParentId != nil {
			parentId = fmt.Sprint(*task.ParentId)
		}
		tagNames := make([]string, 0, len(task.Tags))
		for _, tag := range task.Tags {
			tagNames = append(tagNames, tag.Name)
		}

		record := []string{
			fmt.Sprint(task.Id),
			task.Title,
			task.Description,
			dueDate,
			fmt.Sprint(task.Completed),
			string(task.Priority),
			parentId,
			strings.Join(tagNames, ","),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
