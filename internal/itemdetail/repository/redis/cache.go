package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// cachedDetail is the stored form. Unset structured fields are omitted so
// they decode back to nil rather than a literal null.
type cachedDetail struct {
	ID               int64                `json:"id"`
	Name             string               `json:"name"`
	Description      *string              `json:"description,omitempty"`
	Category         *itemdetail.Category `json:"category,omitempty"`
	Priority         *itemdetail.Priority `json:"priority,omitempty"`
	Status           *itemdetail.Status   `json:"status,omitempty"`
	Assignee         *string              `json:"assignee,omitempty"`
	Location         *string              `json:"location,omitempty"`
	WorkflowStage    *string              `json:"workflow_stage,omitempty"`
	Tags             json.RawMessage      `json:"tags,omitempty"`
	CustomFields     json.RawMessage      `json:"custom_fields,omitempty"`
	Metadata         json.RawMessage      `json:"metadata,omitempty"`
	Dependencies     json.RawMessage      `json:"dependencies,omitempty"`
	ExternalRefs     json.RawMessage      `json:"external_refs,omitempty"`
	LinkedItems      json.RawMessage      `json:"linked_items,omitempty"`
	ReminderSettings json.RawMessage      `json:"reminder_settings,omitempty"`
	AttachmentIDs    json.RawMessage      `json:"attachment_ids,omitempty"`
	DueDate          *string              `json:"due_date,omitempty"`
	EstimatedHours   *float64             `json:"estimated_hours,omitempty"`
	Budget           *float64             `json:"budget,omitempty"`
	ApprovalRequired bool                 `json:"approval_required"`
	TemplateID       *int64               `json:"template_id,omitempty"`
	ParentItemID     *int64               `json:"parent_item_id,omitempty"`
	CreatedBy        string               `json:"created_by"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

func toCached(d itemdetail.ItemDetail) cachedDetail {
	return cachedDetail(d)
}

func fromCached(c cachedDetail) itemdetail.ItemDetail {
	return itemdetail.ItemDetail(c)
}

// Get returns the cached record or repo.ErrCacheMiss.
func (c *implCache) Get(ctx context.Context, id int64) (itemdetail.ItemDetail, error) {
	data, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return itemdetail.ItemDetail{}, repo.ErrCacheMiss
		}
		return itemdetail.ItemDetail{}, fmt.Errorf("%s: %w", c.dsn("Get"), err)
	}

	var cd cachedDetail
	if err := json.Unmarshal(data, &cd); err != nil {
		c.l.Warnf(ctx, "%s: dropping undecodable entry %d: %v", c.dsn("Get"), id, err)
		_ = c.client.Del(ctx, key(id)).Err()
		return itemdetail.ItemDetail{}, repo.ErrCacheMiss
	}
	return fromCached(cd), nil
}

// fillScript sets KEYS[1] unless the marker KEYS[2] records a deletion or a
// version newer than ARGV[2]. ARGV: payload, version, ttl in ms (0 = no expiry).
var fillScript = redis.NewScript(`
local m = redis.call('GET', KEYS[2])
if m and (m == 'deleted' or ARGV[2] < m) then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`)

// invalidateScript raises the marker KEYS[2] to ARGV[1] and deletes KEYS[1].
// A deletion marker is never lowered. ARGV: version or "deleted", marker ttl in ms.
var invalidateScript = redis.NewScript(`
local m = redis.call('GET', KEYS[2])
if m ~= 'deleted' and (ARGV[1] == 'deleted' or not m or m < ARGV[1]) then
	redis.call('SET', KEYS[2], ARGV[1], 'PX', ARGV[2])
end
redis.call('DEL', KEYS[1])
return 1
`)

// Set stores d for ttl unless a newer invalidation has been recorded.
func (c *implCache) Set(ctx context.Context, d itemdetail.ItemDetail, ttl time.Duration) error {
	data, err := json.Marshal(toCached(d))
	if err != nil {
		return fmt.Errorf("%s marshal: %w", c.dsn("Set"), err)
	}

	filled, err := fillScript.Run(ctx, c.client,
		[]string{key(d.ID), markerKey(d.ID)},
		string(data), version(d.UpdatedAt), ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("%s: %w", c.dsn("Set"), err)
	}
	if filled == 0 {
		c.l.Debugf(ctx, "%s: skipped stale fill of %d", c.dsn("Set"), d.ID)
	}
	return nil
}

// Invalidate evicts the cached record and records the invalidating version.
func (c *implCache) Invalidate(ctx context.Context, opt repo.InvalidateOptions) error {
	marker := version(opt.Version)
	if opt.Deleted {
		marker = deletedMarker
	}

	err := invalidateScript.Run(ctx, c.client,
		[]string{key(opt.ID), markerKey(opt.ID)},
		marker, markerTTL.Milliseconds(),
	).Err()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("%s: %w", c.dsn("Invalidate"), err)
	}
	return nil
}
