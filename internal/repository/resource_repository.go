package repository

import (
	"context"
	"encoding/json"
	"time"

	"ai_tutor_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const resourceCacheTTL = 5 * time.Minute

// ResourceRepository persists learning resources. Reads go through Redis
// when a client is configured because the frontend polls resources while
// content generation is in flight.
type ResourceRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewResourceRepository(db *gorm.DB, rdb *redis.Client) *ResourceRepository {
	return &ResourceRepository{DB: db, RDB: rdb}
}

func (r *ResourceRepository) Create(res *model.LearningResource) error {
	return r.DB.Create(res).Error
}

func (r *ResourceRepository) CreateBatch(resources []*model.LearningResource) error {
	if len(resources) == 0 {
		return nil
	}
	return r.DB.Create(resources).Error
}

func (r *ResourceRepository) FindByID(id string) (*model.LearningResource, error) {
	if cached := r.cacheGet(id); cached != nil {
		return cached, nil
	}
	var res model.LearningResource
	if err := r.DB.Where("id = ?", id).First(&res).Error; err != nil {
		return nil, err
	}
	// Only fully generated resources are cached so pollers always see
	// status transitions straight from the database.
	if res.Status == model.ResourceReady {
		r.cacheSet(&res)
	}
	return &res, nil
}

// ResourceUpdate carries the generated fields applied when a skeleton
// resource is filled in.
type ResourceUpdate struct {
	Title              string
	Content            string
	Summary            string
	LearningObjectives []string
	EstimatedDuration  int
}

// MarkReady fills in a generating resource and flips its status. The status
// guard makes materialization idempotent: a resource that is already ready
// is left untouched and the call reports false.
func (r *ResourceRepository) MarkReady(id string, upd ResourceUpdate) (bool, error) {
	values := map[string]interface{}{
		"status":     model.ResourceReady,
		"updated_at": time.Now(),
	}
	if upd.Title != "" {
		values["title"] = upd.Title
	}
	if upd.Content != "" {
		values["content"] = upd.Content
	}
	if upd.Summary != "" {
		values["summary"] = upd.Summary
	}
	if len(upd.LearningObjectives) > 0 {
		raw, err := json.Marshal(upd.LearningObjectives)
		if err != nil {
			return false, err
		}
		values["learning_objectives"] = raw
	}
	if upd.EstimatedDuration > 0 {
		values["estimated_duration"] = upd.EstimatedDuration
	}
	tx := r.DB.Model(&model.LearningResource{}).
		Where("id = ? AND status = ?", id, model.ResourceGenerating).
		Updates(values)
	if tx.Error != nil {
		return false, tx.Error
	}
	r.cacheDel(id)
	return tx.RowsAffected > 0, nil
}

func (r *ResourceRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.DB.Model(&model.LearningResource{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *ResourceRepository) cacheKey(id string) string {
	return "resource:" + id
}

func (r *ResourceRepository) cacheGet(id string) *model.LearningResource {
	if r.RDB == nil {
		return nil
	}
	raw, err := r.RDB.Get(context.Background(), r.cacheKey(id)).Bytes()
	if err != nil {
		return nil
	}
	var res model.LearningResource
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil
	}
	return &res
}

func (r *ResourceRepository) cacheSet(res *model.LearningResource) {
	if r.RDB == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	r.RDB.Set(context.Background(), r.cacheKey(res.ID), raw, resourceCacheTTL)
}

func (r *ResourceRepository) cacheDel(id string) {
	if r.RDB == nil {
		return
	}
	r.RDB.Del(context.Background(), r.cacheKey(id))
}
