package consts

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	DeletedCommentPlaceholder = "삭제된 댓글입니다."
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// 字段长度上限，与表结构一致
const (
	MaxLoginIDLen  = 50
	MaxUsernameLen = 30
	MaxTitleLen    = 255
	MaxContentLen  = 10000
	MaxCommentLen  = 500
	MaxCategoryLen = 50
	MinPasswordLen = 4
	MaxPasswordLen = 72
)
