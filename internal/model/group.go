package model

import "time"

// MainGroup 顶级分类，预置数据，接口只允许更新标题图
type MainGroup struct {
	ID         uint64 `gorm:"column:group_id;primaryKey" json:"group_id"`
	Name       string `gorm:"size:128;not null" json:"name"`
	TitleImage []byte `json:"title_image"`
}

func (MainGroup) TableName() string {
	return "maingroup"
}

// SubGroup 属于某个 MainGroup；(main_group_id, name) 唯一
type SubGroup struct {
	ID          uint64    `gorm:"column:group_id;primaryKey" json:"group_id"`
	MainGroupID uint64    `gorm:"not null;index;uniqueIndex:uk_subgroup_main_name,priority:1" json:"main_group_id"`
	UserID      uint64    `gorm:"index" json:"user_id"`
	Name        string    `gorm:"size:128;not null;uniqueIndex:uk_subgroup_main_name,priority:2" json:"name"`
	Caption     string    `gorm:"size:255" json:"caption"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	TitleImage  []byte    `json:"title_image"`
	Members     int       `gorm:"not null;default:0" json:"members"`
	Events      int       `gorm:"not null;default:0" json:"events"`
	Threads     int       `gorm:"not null;default:0" json:"threads"`
	CreatedAt   time.Time `json:"created_at"`
}

func (SubGroup) TableName() string {
	return "subgroups"
}

// MainGroupWithSubgroups 主分组及其子分组的聚合视图
type MainGroupWithSubgroups struct {
	MainGroupID         uint64            `json:"mainGroupId"`
	MainGroupName       string            `json:"mainGroupName"`
	MainGroupTitleImage []byte            `json:"mainGroupTitleImage"`
	Subgroups           []SubgroupSummary `json:"subgroups"`
}

type SubgroupSummary struct {
	UserID             uint64    `json:"userId"`
	SubgroupID         uint64    `json:"subgroupId"`
	SubgroupName       string    `json:"subgroupName"`
	SubgroupTitleImage []byte    `json:"subgroupTitleImage"`
	Members            int       `json:"members"`
	Events             int       `json:"events"`
	Threads            int       `json:"threads"`
	CreatedAt          time.Time `json:"createdAt"`
	SubgroupCaption    string    `json:"subgroupCaption"`
}
