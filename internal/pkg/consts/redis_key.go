package consts

const (
	TokenRevokedKey = "board:token:revoked:"
)
