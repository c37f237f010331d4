package models

// FavoriteEntry is one (user, page) favorite pairing. At most one row
// may exist per (fl_user, fl_namespace, fl_title) triple.
type FavoriteEntry struct {
	UserID                int64  `gorm:"column:fl_user;not null;uniqueIndex:uniq_fl_user_ns_title,priority:1;index:idx_fl_user"`
	Namespace             int    `gorm:"column:fl_namespace;not null;uniqueIndex:uniq_fl_user_ns_title,priority:2;index:idx_fl_ns_title,priority:1"`
	Title                 string `gorm:"column:fl_title;type:text;not null;uniqueIndex:uniq_fl_user_ns_title,priority:3;index:idx_fl_ns_title,priority:2"`
	NotificationTimestamp *int64 `gorm:"column:fl_notification_timestamp"`
}

func (FavoriteEntry) TableName() string { return "favoritelist" }
