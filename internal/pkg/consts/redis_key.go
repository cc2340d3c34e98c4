package consts

const (
	PostLikeKey     = "post:like:"
	PostCommentKey  = "post:comment:"
	CommentReplyKey = "comment:reply:"

	PostDirtyKey    = "post:dirty"
	CommentDirtyKey = "comment:dirty"

	TokenRevokedKey = "token:revoked:"
)
