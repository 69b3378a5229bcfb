package service

import (
	"context"
	"errors"
	log "log/slog"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrInvalidInput          = errors.New("입력값이 올바르지 않습니다")
	ErrUserNotFound          = errors.New("존재하지 않는 회원입니다.")
	ErrLoginIDNotFound       = errors.New("존재하지 않는 아이디입니다.")
	ErrPasswordIncorrect     = errors.New("비밀번호가 일치하지 않습니다.")
	ErrLoginIDExists         = errors.New("이미 존재하는 아이디입니다.")
	ErrUsernameExists        = errors.New("이미 존재하는 이름입니다.")
	ErrCategoryNotFound      = errors.New("존재하지 않는 카테고리입니다.")
	ErrCategoryExists        = errors.New("이미 존재하는 카테고리입니다")
	ErrPostNotFound          = errors.New("존재하지 않는 게시글입니다.")
	ErrCommentNotFound       = errors.New("존재하지 않는 댓글입니다.")
	ErrParentCommentNotFound = errors.New("존재하지 않는 부모 댓글입니다.")
	ErrDeletedCommentEdit    = errors.New("삭제된 댓글은 수정할 수 없습니다.")
	ErrConcurrentRequest     = errors.New("이미 처리된 요청입니다. 다시 시도해주세요.")
	ErrForbidden             = errors.New("권한이 없습니다.")
	ErrUnauthorized          = errors.New("로그인이 필요합니다.")
	UnExpectedError          = errors.New("일시적인 오류가 발생했습니다. 잠시 후 다시 시도해주세요.")
)

var ErrorMap = map[error]int{
	ErrInvalidInput:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrLoginIDNotFound:       NotFound,
	ErrPasswordIncorrect:     Unauthorized,
	ErrLoginIDExists:         Conflict,
	ErrUsernameExists:        Conflict,
	ErrCategoryNotFound:      NotFound,
	ErrCategoryExists:        Conflict,
	ErrPostNotFound:          NotFound,
	ErrCommentNotFound:       NotFound,
	ErrParentCommentNotFound: NotFound,
	ErrDeletedCommentEdit:    BadRequest,
	ErrConcurrentRequest:     Conflict,
	ErrForbidden:             Forbidden,
	ErrUnauthorized:          Unauthorized,
	UnExpectedError:          InternalServerError,
}

// CodeOf 查找错误链上第一个已登记的业务错误
func CodeOf(err error) (int, bool) {
	if code, ok := ErrorMap[err]; ok {
		return code, true
	}
	for sentinel, code := range ErrorMap {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return InternalServerError, false
}

// invalidInput 校验细节只写日志，对外只返回本地化提示
func invalidInput(ctx context.Context, err error) error {
	log.InfoContext(ctx, "input validation failed", "err", err)
	return ErrInvalidInput
}
