package entities

import (
	"errors"
	"strings"
	"time"
)

type Project struct {
	Id          uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Description string
	OwnerId     uint
}

func NewProject(title, description string, ownerId uint) *Project {
	return &Project{
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Title:       strings.TrimSpace(title),
		Description: description,
		OwnerId:     ownerId,
	}
}

func (p *Project) validate() error {
	if p.Title == "" {
		return errors.New("project title must not be empty")
	}
	if p.OwnerId == 0 {
		return errors.New("project owner must be set")
	}
	return nil
}

func (p *Project) Update(title, description string) error {
	p.Title = strings.TrimSpace(title)
	p.Description = description
	p.UpdatedAt = time.Now()
	return p.validate()
}

type ValidatedProject struct {
	*Project
}

func NewValidatedProject(project *Project) (*ValidatedProject, error) {
	if err := project.validate(); err != nil {
		return nil, err
	}

	return &ValidatedProject{Project: project}, nil
}

func (vp *ValidatedProject) GetProject() *Project {
	return vp.Project
}
