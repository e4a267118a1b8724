package database

import (
	"context"
	"strings"

	"github.com/arnavshah/office-dashboard/pkg/models"
	"gorm.io/gorm"
)

// TeamStore reads the roster
type TeamStore struct {
	DB *gorm.DB
}

// ListActive returns active members ordered by last name, then first name.
func (s TeamStore) ListActive(ctx context.Context) ([]models.TeamMember, error) {
	var rows []TeamMember
	err := s.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]models.TeamMember, 0, len(rows))
	for _, r := range rows {
		members = append(members, r.ToModel())
	}
	return members, nil
}

// ToModel converts the row to its public view
func (m TeamMember) ToModel() models.TeamMember {
	name := strings.TrimSpace(m.FirstName + " " + m.LastName)
	nickname := strings.TrimSpace(m.NickName)
	if nickname == "" {
		nickname = strings.TrimSpace(m.FirstName)
	}
	return models.TeamMember{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		FirstName:  m.FirstName,
		LastName:   m.LastName,
		Name:       name,
		Nickname:   nickname,
		Email:      m.Email,
		Role:       m.Role,
		Avatar:     m.Avatar,
		Birthday:   m.Birthday,
		JoinedDate: m.JoinedDate,
	}
}
