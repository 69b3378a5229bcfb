package util

import (
	"Board/internal/api/config"
	"Board/internal/pkg/consts"
)

// NormalizePage 修正非法页码，页大小限制在配置范围内
func NormalizePage(page, pageSize int) (int, int) {
	defaultSize, maxSize := consts.DefaultPageSize, consts.MaxPageSize
	if config.Cfg != nil {
		if config.Cfg.Paging.DefaultPageSize > 0 {
			defaultSize = config.Cfg.Paging.DefaultPageSize
		}
		if config.Cfg.Paging.MaxPageSize > 0 {
			maxSize = config.Cfg.Paging.MaxPageSize
		}
	}

	if page < 1 {
		page = consts.DefaultPage
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	return page, pageSize
}

// Offset 页码转偏移量
func Offset(page, pageSize int) int {
	return (page - 1) * pageSize
}
