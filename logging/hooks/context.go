package hooks

import (
	"context"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
)

var _ logrus.Hook = &Context{}

type ctxKey uint8

const UID ctxKey = iota

// WithUID returns a context carrying a new unique id for log correlation.
func WithUID(ctx context.Context) context.Context {
	return context.WithValue(ctx, UID, xid.New().String())
}

// Context adds the uid of the entry context to the entry fields.
type Context struct{}

func (c *Context) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (c *Context) Fire(entry *logrus.Entry) error {
	_, exist := entry.Data["uid"]
	if entry.Context != nil && !exist {
		if uid := entry.Context.Value(UID); uid != nil {
			entry.Data["uid"] = uid
		}
	}
	return nil
}
