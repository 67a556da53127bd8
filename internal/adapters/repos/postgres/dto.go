package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/plotbay/plotbay-backend/internal/domain/admin"
)

type AdminDTO struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Mobile       string
	PassHash     []byte
	ImageURL     string
	IsActive     bool
	IsDeleted    bool
	RegisteredAt time.Time
}

func DomainToAdminDTO(a *admin.Admin) AdminDTO {
	return AdminDTO{
		ID:           a.ID().UUID(),
		Name:         a.Name(),
		Email:        a.Email(),
		Mobile:       a.Mobile(),
		PassHash:     a.PassHash(),
		ImageURL:     a.ImageURL(),
		IsActive:     a.IsActive(),
		IsDeleted:    a.IsDeleted(),
		RegisteredAt: a.RegisteredAt(),
	}
}

func AdminToDomain(dto AdminDTO) *admin.Admin {
	return admin.Rehydrate(admin.RehydrateArgs{
		ID:           admin.ID(dto.ID),
		Name:         dto.Name,
		Email:        dto.Email,
		Mobile:       dto.Mobile,
		PassHash:     dto.PassHash,
		ImageURL:     dto.ImageURL,
		IsActive:     dto.IsActive,
		IsDeleted:    dto.IsDeleted,
		RegisteredAt: dto.RegisteredAt,
	})
}
