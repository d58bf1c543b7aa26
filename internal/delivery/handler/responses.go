package handler

import (
	"time"

	"github.com/bearh141/todo-list/internal/application/services"
	"github.com/bearh141/todo-list/internal/domain/entities"
)

type userResponse struct {
	Id         uint   `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	IsAdmin    bool   `json:"is_admin"`
	Theme      string `json:"theme"`
	AvatarPath string `json:"avatar_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func newUserResponse(user *entities.User) userResponse {
	return userResponse{
		Id:         user.Id,
		Username:   user.Username,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
		Theme:      user.Theme,
		AvatarPath: user.AvatarPath,
		CreatedAt:  user.CreatedAt,
	}
}

type projectResponse struct {
	Id          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerId     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Role        string    `json:"role,omitempty"`
	Progress    *int      `json:"progress,omitempty"`
}

func newProjectResponse(project *entities.Project) projectResponse {
	return projectResponse{
		Id:          project.Id,
		Title:       project.Title,
		Description: project.Description,
		OwnerId:     project.OwnerId,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func newProjectSummaryResponse(summary services.ProjectSummary) projectResponse {
	resp := newProjectResponse(summary.Project)
	resp.Role = string(summary.Role)
	progress := summary.Progress
	resp.Progress = &progress
	return resp
}

type taskResponse struct {
	Id           uint           `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	DueDate      string         `json:"due_date,omitempty"`
	Completed    bool           `json:"completed"`
	Priority     string         `json:"priority"`
	ParentId     *uint          `json:"parent_id,omitempty"`
	ProjectId    uint           `json:"project_id"`
	OwnerId      uint           `json:"owner_id"`
	Tags         []string       `json:"tags"`
	Subtasks     []taskResponse `json:"subtasks,omitempty"`
}

func newTaskResponse(task *entities.Task) taskResponse {
	dueDate := ""
	if task.DueDate != nil {
		dueDate = task.DueDate.Format("2006-01-02")
	}
	tags := make([]string, 0, len(task.Tags))
	for _, tag := range task.Tags {
		tags = append(tags, tag.Name)
	}
	return taskResponse{
		Id:          task.Id,
		Title:       task.Title,
		Description: task.Description,
		DueDate:     dueDate,
		Completed:   task.Completed,
		Priority:    string(task.Priority),
		ParentId:    task.ParentId,
		ProjectId:   task.ProjectId,
		OwnerId:     task.OwnerId,
		Tags:        tags,
	}
}

func newTaskTreeResponse(nodes []*entities.TaskNode) []taskResponse {
	responses := make([]taskResponse, 0, len(nodes))
	for _, node := range nodes {
		resp := newTaskResponse(node.Task)
		resp.Subtasks = newTaskTreeResponse(node.Children)
		responses = append(responses, resp)
	}
	return responses
}

type shareResponse struct {
	ProjectId uint   `json:"project_id"`
	UserId    uint   `json:"user_id"`
	Username  string `json:"username,omitempty"`
	Role      string `json:"role"`
}

type projectDetailResponse struct {
	Project  projectResponse `json:"project"`
	Role     string          `json:"role"`
	Progress int             `json:"progress"`
	Tasks    []taskResponse  `json:"tasks"`
	Shares   []shareResponse `json:"shares"`
}

func newProjectDetailResponse(detail *services.ProjectDetail) projectDetailResponse {
	shares := make([]shareResponse, 0, len(detail.Shares))
	for _, info := range detail.Shares {
		shares = append(shares, shareResponse{
			ProjectId: info.Share.ProjectId,
			UserId:    info.Share.UserId,
			Username:  info.Username,
			Role:      string(info.Share.Role),
		})
	}
	return projectDetailResponse{
		Project:  newProjectResponse(detail.Project),
		Role:     string(detail.Role),
		Progress: detail.Progress,
		Tasks:    newTaskTreeResponse(detail.Tasks),
		Shares:   shares,
	}
}
