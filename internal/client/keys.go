package client

import "fmt"

// Keys builds the cache keys for one resource collection. Item and
// child keys share the list key as prefix, so invalidating the prefix
// after a mutation covers every cached view of the entity.
type Keys struct {
	base string
}

func NewKeys(base string) Keys {
	return Keys{base: base}
}

// List is the key for the collection listing.
func (k Keys) List() string {
	return k.base
}

// Item is the key for a single entity.
func (k Keys) Item(id int64) string {
	return fmt.Sprintf("%s/%d", k.base, id)
}

// Child is the key for a sub-resource of a single entity, such as a
// job's applications or a community's members.
func (k Keys) Child(id int64, name string) string {
	return fmt.Sprintf("%s/%d/%s", k.base, id, name)
}

// Named is the key for a static sub-path of the collection, such as
// /jobs/saved.
func (k Keys) Named(name string) string {
	return k.base + "/" + name
}

var (
	UserKeys        = NewKeys("/api/v1/users")
	PostKeys        = NewKeys("/api/v1/posts")
	JobKeys         = NewKeys("/api/v1/jobs")
	ApplicationKeys = NewKeys("/api/v1/applications")
	CommunityKeys   = NewKeys("/api/v1/communities")
	ConnectionKeys  = NewKeys("/api/v1/connections")
	MessageKeys     = NewKeys("/api/v1/messages")
	CompanyKeys     = NewKeys("/api/v1/companies")
)
