package activity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
	Deleted Action = "deleted"
)

// Event رویدادی که بعد از هر تغییر موفق در پست‌ها ثبت می‌شود
type Event struct {
	ID     uuid.UUID `json:"id"`
	Action Action    `json:"action"`
	PostID int       `json:"post_id"`
	At     time.Time `json:"at"`
}

func NewEvent(action Action, postID int) Event {
	return Event{
		ID:     uuid.Must(uuid.NewV4()),
		Action: action,
		PostID: postID,
		At:     time.Now(),
	}
}

// Member کلید رویداد در فید فعالیت، مثل "created:4:<uuid>".
// بدون شناسه رویداد، ZADD رویدادهای تکراری یک پست را روی هم می‌نویسد.
func (e Event) Member() string {
	return fmt.Sprintf("%s:%d:%s", e.Action, e.PostID, e.ID)
}
