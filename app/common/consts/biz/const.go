package biz

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	ACCESSTOKEN = "access_token"
)
