package catalog

import (
	"campus-connect/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type Meeting struct {
	Date     time.Time `json:"date"`
	Time     string    `json:"time"`
	Location string    `json:"location"`
}

// ClubWithNextMeeting 列表和详情接口返回的社团
type ClubWithNextMeeting struct {
	model.Club
	MemberCount int64    `json:"memberCount"`
	IsMember    bool     `gorm:"-" json:"isMember"`
	NextMeeting *Meeting `gorm:"-" json:"nextMeeting,omitempty"`
}

type ClubFilter struct {
	Category string // "all" 表示不限
	Search   string
	Limit    int
	Offset   int
}

type ClubInput struct {
	Name        string
	Description string
	Category    string
}

type MeetingInput struct {
	Date     time.Time
	Time     string
	Location string
}

// memberCounts 每个社团的成员数子查询
func (s *Service) memberCounts() *gorm.DB {
	return s.db.Model(&model.ClubMembership{}).
		Select("club_id, COUNT(*) AS total").
		Group("club_id")
}

// ListClubs 按成员数降序（相同按 id 升序）列出社团
func (s *Service) ListClubs(ctx context.Context, viewerID uint, f ClubFilter) ([]ClubWithNextMeeting, error) {
	limit, offset := normalizePage(f.Limit, f.Offset, DefaultListLimit)

	q := s.db.WithContext(ctx).
		Table("club").
		Select("club.*, COALESCE(mc.total, 0) AS member_count").
		Joins("LEFT JOIN (?) AS mc ON mc.club_id = club.id", s.memberCounts())
	if f.Search != "" {
		q = q.Where("club.name LIKE ?", "%"+f.Search+"%")
	}
	if f.Category != "" && f.Category != "all" {
		q = q.Where("club.category = ?", f.Category)
	}

	var clubs []ClubWithNextMeeting
	err := q.Order("member_count DESC").Order("club.id ASC").Limit(limit).Offset(offset).Scan(&clubs).Error
	if err != nil {
		return nil, err
	}
	if clubs == nil {
		clubs = []ClubWithNextMeeting{}
	}
	if viewerID == 0 || len(clubs) == 0 {
		return clubs, nil
	}

	ids := make([]uint, len(clubs))
	for i, c := range clubs {
		ids[i] = c.ID
	}
	var joined []uint
	err = s.db.WithContext(ctx).Model(&model.ClubMembership{}).
		Where("user_id = ? AND club_id IN ?", viewerID, ids).
		Pluck("club_id", &joined).Error
	if err != nil {
		return nil, err
	}
	member := make(map[uint]bool, len(joined))
	for _, id := range joined {
		member[id] = true
	}
	for i := range clubs {
		clubs[i].IsMember = member[clubs[i].ID]
	}
	return clubs, nil
}

// GetClub 返回社团详情和下一次（date >= now）例会
func (s *Service) GetClub(ctx context.Context, id, viewerID uint, now time.Time) (*ClubWithNextMeeting, error) {
	db := s.db.WithContext(ctx)
	result := &ClubWithNextMeeting{}
	if err := db.First(&result.Club, id).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ClubMembership{}).Where("club_id = ?", id).Count(&result.MemberCount).Error; err != nil {
		return nil, err
	}
	if viewerID != 0 {
		var n int64
		if err := db.Model(&model.ClubMembership{}).Where("club_id = ? AND user_id = ?", id, viewerID).Count(&n).Error; err != nil {
			return nil, err
		}
		result.IsMember = n > 0
	}

	meeting, err := s.nextMeeting(ctx, id, now)
	if err != nil {
		return nil, err
	}
	result.NextMeeting = meeting
	return result, nil
}

func (s *Service) nextMeeting(ctx context.Context, clubID uint, now time.Time) (*Meeting, error) {
	var m model.ClubMeeting
	err := s.db.WithContext(ctx).
		Where("club_id = ? AND date >= ?", clubID, now.UTC()).
		Order("date ASC").
		Order("id ASC").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &Meeting{Date: m.Date, Time: m.Time, Location: m.Location}, nil
}

func (s *Service) CreateClub(ctx context.Context, in ClubInput, createdBy uint, now time.Time) (*ClubWithNextMeeting, error) {
	club := model.Club{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		CreatedBy:   createdBy,
	}
	if err := s.db.WithContext(ctx).Create(&club).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return s.GetClub(ctx, club.ID, 0, now)
}

func (s *Service) UpdateClub(ctx context.Context, id uint, in ClubInput, now time.Time) (*ClubWithNextMeeting, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club model.Club
		if err := tx.First(&club, id).Error; err != nil {
			return err
		}
		club.Name = in.Name
		club.Description = in.Description
		club.Category = in.Category
		return tx.Save(&club).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return s.GetClub(ctx, id, 0, now)
}

// DeleteClub 在一个事务里先删成员和例会，再删社团
func (s *Service) DeleteClub(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("club_id = ?", id).Delete(&model.ClubMembership{}).Error; err != nil {
			return err
		}
		if err := tx.Where("club_id = ?", id).Delete(&model.ClubMeeting{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Club{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AddMeeting 为社团安排一次例会，社团不存在时返回 gorm.ErrRecordNotFound
func (s *Service) AddMeeting(ctx context.Context, clubID uint, in MeetingInput) (*model.ClubMeeting, error) {
	meeting := &model.ClubMeeting{
		ClubID:   clubID,
		Date:     in.Date.UTC(),
		Time:     in.Time,
		Location: in.Location,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var club model.Club
		if err := tx.Select("id").First(&club, clubID).Error; err != nil {
			return err
		}
		return tx.Create(meeting).Error
	})
	if err != nil {
		return nil, err
	}
	return meeting, nil
}
