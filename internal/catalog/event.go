package catalog

import (
	"campus-connect/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventWithCategories 列表和详情接口返回的活动
type EventWithCategories struct {
	model.Event
	Categories        []string `json:"categories"`
	CategoryValues    []string `json:"categoryValues"`
	CategoryIDs       []uint   `json:"categoryIds"`
	RegistrationCount int64    `json:"registrationCount"`
	IsRegistered      bool     `json:"isRegistered"`
}

type EventFilter struct {
	Category string // 分类 value，"all" 表示不限
	Date     string // today/this-week/this-month/upcoming/past
	Search   string // 标题模糊匹配
	Limit    int
	Offset   int
}

type EventInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
	ImageURL    string
	Categories  []string // 分类 value，未知的值被忽略；更新时为空表示保持原分类
}

// ListEvents 按日期升序列出活动，并为 viewerID 标注是否已报名
func (s *Service) ListEvents(ctx context.Context, viewerID uint, f EventFilter, now time.Time) ([]EventWithCategories, error) {
	limit, offset := normalizePage(f.Limit, f.Offset, DefaultListLimit)
	q := s.db.WithContext(ctx).Model(&model.Event{})

	if f.Search != "" {
		q = q.Where("event.title LIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("event.id IN (?)", s.db.Model(&model.EventCategory{}).
			Select("event_category.event_id").
			Joins("JOIN category ON category.id = event_category.category_id").
			Where("category.value = ?", f.Category))
	}
	if from, to, ok := dateRange(f.Date, now); ok {
		if !from.IsZero() {
			q = q.Where("event.date >= ?", from)
		}
		if !to.IsZero() {
			q = q.Where("event.date < ?", to)
		}
	}

	var events []model.Event
	err := q.Order("event.date ASC").Order("event.id ASC").Limit(limit).Offset(offset).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return s.annotate(ctx, events, viewerID)
}

// UpcomingEvents 最近的 limit 个未开始活动
func (s *Service) UpcomingEvents(ctx context.Context, viewerID uint, limit int, now time.Time) ([]EventWithCategories, error) {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	return s.ListEvents(ctx, viewerID, EventFilter{Date: DateUpcoming, Limit: limit}, now)
}

// GetEvent 不存在时返回 gorm.ErrRecordNotFound
func (s *Service) GetEvent(ctx context.Context, id, viewerID uint) (*EventWithCategories, error) {
	var event model.Event
	if err := s.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	annotated, err := s.annotate(ctx, []model.Event{event}, viewerID)
	if err != nil {
		return nil, err
	}
	return &annotated[0], nil
}

// annotate 批量补充分类、报名人数和是否已报名，避免逐条查询
func (s *Service) annotate(ctx context.Context, events []model.Event, viewerID uint) ([]EventWithCategories, error) {
	result := make([]EventWithCategories, len(events))
	if len(events) == 0 {
		return result, nil
	}
	db := s.db.WithContext(ctx)
	ids := make([]uint, len(events))
	index := make(map[uint]int, len(events))
	for i, e := range events {
		ids[i] = e.ID
		index[e.ID] = i
		result[i] = EventWithCategories{
			Event:          e,
			Categories:     []string{},
			CategoryValues: []string{},
			CategoryIDs:    []uint{},
		}
	}

	var links []struct {
		EventID    uint
		CategoryID uint
		Name       string
		Value      string
	}
	err := db.Model(&model.EventCategory{}).
		Select("event_category.event_id, event_category.category_id, category.name, category.value").
		Joins("JOIN category ON category.id = event_category.category_id").
		Where("event_category.event_id IN ?", ids).
		Order("category.name ASC").
		Scan(&links).Error
	if err != nil {
		return nil, err
	}
	for _, l := range links {
		r := &result[index[l.EventID]]
		r.Categories = append(r.Categories, l.Name)
		r.CategoryValues = append(r.CategoryValues, l.Value)
		r.CategoryIDs = append(r.CategoryIDs, l.CategoryID)
	}

	var counts []struct {
		EventID uint
		Total   int64
	}
	err = db.Model(&model.EventRegistration{}).
		Select("event_id, COUNT(*) AS total").
		Where("event_id IN ?", ids).
		Group("event_id").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		result[index[c.EventID]].RegistrationCount = c.Total
	}

	if viewerID != 0 {
		var registered []uint
		err = db.Model(&model.EventRegistration{}).
			Where("user_id = ? AND event_id IN ?", viewerID, ids).
			Pluck("event_id", &registered).Error
		if err != nil {
			return nil, err
		}
		for _, id := range registered {
			result[index[id]].IsRegistered = true
		}
	}
	return result, nil
}

// CategoryIDs 把分类 value 转成 id，未知的 value 被忽略
func CategoryIDs(tx *gorm.DB, values []string) ([]uint, error) {
	ids := make([]uint, 0, len(values))
	if len(values) == 0 {
		return ids, nil
	}
	err := tx.Model(&model.Category{}).Where("value IN ?", values).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func linkCategories(tx *gorm.DB, eventID uint, values []string) error {
	ids, err := CategoryIDs(tx, values)
	if err != nil || len(ids) == 0 {
		return err
	}
	links := make([]model.EventCategory, len(ids))
	for i, id := range ids {
		links[i] = model.EventCategory{EventID: eventID, CategoryID: id}
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}

func (s *Service) CreateEvent(ctx context.Context, in EventInput, createdBy uint) (*EventWithCategories, error) {
	event := model.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date.UTC(),
		Time:        in.Time,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		CreatedBy:   createdBy,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return linkCategories(tx, event.ID, in.Categories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, event.ID, 0)
}

// UpdateEvent 覆盖全部字段；提供了分类时替换原有分类
func (s *Service) UpdateEvent(ctx context.Context, id uint, in EventInput) (*EventWithCategories, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event model.Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		event.Title = in.Title
		event.Description = in.Description
		event.Date = in.Date.UTC()
		event.Time = in.Time
		event.Location = in.Location
		event.ImageURL = in.ImageURL
		if err := tx.Save(&event).Error; err != nil {
			return err
		}

		if len(in.Categories) == 0 {
			return nil
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.EventCategory{}).Error; err != nil {
			return err
		}
		return linkCategories(tx, id, in.Categories)
	})
	if err != nil {
		return nil, err
	}
	return s.GetEvent(ctx, id, 0)
}

// DeleteEvent 在一个事务里先删报名和分类关联，再删活动；积分和动态保留
func (s *Service) DeleteEvent(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&model.EventRegistration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.EventCategory{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Event{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// IsNotFound 统一判断查询不到记录
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
