package model

// AllModels 需要迁移的全部实体
func AllModels() []any {
	return []any{&User{}, &Category{}, &Post{}, &Comment{}, &Reaction{}, &Bookmark{}}
}
