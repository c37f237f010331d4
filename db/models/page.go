package models

// Page is the wiki's page catalog row, joined against favoritelist to
// annotate entries with existence and redirect status. The favorites
// service never writes this table; the host wiki owns it.
type Page struct {
	ID         int64  `gorm:"column:page_id;primaryKey;autoIncrement"`
	Namespace  int    `gorm:"column:page_namespace;not null;uniqueIndex:uniq_page_ns_title,priority:1"`
	Title      string `gorm:"column:page_title;type:text;not null;uniqueIndex:uniq_page_ns_title,priority:2"`
	IsRedirect bool   `gorm:"column:page_is_redirect;not null"`
	Len        int    `gorm:"column:page_len;not null"`
}

func (Page) TableName() string { return "page" }
