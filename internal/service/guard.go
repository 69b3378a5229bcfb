package service

// RequireOwner 请求者必须是资源作者，匿名请求者（0）一律拒绝
func RequireOwner(ownerID, requesterID uint64) error {
	if requesterID == 0 || ownerID != requesterID {
		return ErrForbidden
	}
	return nil
}
