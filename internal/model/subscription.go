package model

// SubscribedMainGroup 用户加入的主分组；不设唯一约束，重复订阅会产生重复行
type SubscribedMainGroup struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64 `gorm:"not null;index:idx_smg_user_main,priority:1" json:"user_id"`
	MainGroupID uint64 `gorm:"not null;index:idx_smg_user_main,priority:2" json:"main_group_id"`
}

func (SubscribedMainGroup) TableName() string {
	return "subscribedmaingroups"
}

// SubscribedSubGroup 用户加入的子分组，MainGroupID 为调用方提供的冗余父级
type SubscribedSubGroup struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint64 `gorm:"not null;index:idx_ssg_user_main,priority:1" json:"user_id"`
	SubgroupID  uint64 `gorm:"not null;index" json:"subgroup_id"`
	MainGroupID uint64 `gorm:"not null;index:idx_ssg_user_main,priority:2" json:"main_group_id"`
}

func (SubscribedSubGroup) TableName() string {
	return "subscribedsubgroups"
}
