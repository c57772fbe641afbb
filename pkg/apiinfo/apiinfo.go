package apiinfo

const (
	DefaultBaseURL = "https://jsonplaceholder.typicode.com"

	UsersResource = "users"
	PostsResource = "posts"
)

const (
	LimitParam = "_limit"
	PageParam  = "_page"
)

const (
	ContentTypeHeader = "Content-Type"
	AcceptHeader      = "Accept"
	JSONContentType   = "application/json; charset=UTF-8"
)
