package db

import (
	"time"
)

type UserModel struct {
	Id         uint `gorm:"primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Username   string  `gorm:"size:80;uniqueIndex;not null"`
	Email      *string `gorm:"size:120;uniqueIndex"`
	Password   string  `gorm:"size:200;not null"`
	IsAdmin    bool    `gorm:"default:false"`
	Theme      string  `gorm:"size:20;default:light"`
	AvatarPath string  `gorm:"size:255"`

	Projects []ProjectModel      `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE"`
	Tasks    []TaskModel         `gorm:"foreignKey:OwnerId;constraint:OnDelete:CASCADE"`
	Shares   []ProjectShareModel `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (UserModel) TableName() string {
	return "users"
}

type ProjectModel struct {
	Id          uint `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string `gorm:"size:200;uniqueIndex:idx_projects_owner_title;not null"`
	Description string `gorm:"type:text"`
	OwnerId     uint   `gorm:"uniqueIndex:idx_projects_owner_title;not null"`

	Tasks  []TaskModel         `gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
	Shares []ProjectShareModel `gorm:"foreignKey:ProjectId;constraint:OnDelete:CASCADE"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

type TaskModel struct {
	Id           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Title        string `gorm:"size:200;uniqueIndex:idx_tasks_project_title;not null"`
	Description  string `gorm:"type:text"`
	DueDate      *time.Time
	Completed    bool   `gorm:"default:false"`
	Priority     string `gorm:"size:10;default:medium"`
	ParentId     *uint  `gorm:"index"`
	ProjectId    uint   `gorm:"uniqueIndex:idx_tasks_project_title;not null"`
	OwnerId      uint   `gorm:"not null"`
	ReminderSent bool   `gorm:"default:false"`

	Subtasks []TaskModel `gorm:"foreignKey:ParentId;constraint:OnDelete:CASCADE"`
	Tags     []TagModel  `gorm:"many2many:task_tags"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

type TagModel struct {
	Id   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (TagModel) TableName() string {
	return "tags"
}

type ProjectShareModel struct {
	Id        uint `gorm:"primaryKey"`
	ProjectId uint `gorm:"uniqueIndex:idx_shares_project_user;not null"`
	UserId    uint `gorm:"uniqueIndex:idx_shares_project_user;not null"`
	Role      string `gorm:"size:10;default:viewer"`
}

func (ProjectShareModel) TableName() string {
	return "project_shares"
}
