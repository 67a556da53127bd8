package integration

import (
	"github.com/plotbay/plotbay-backend/internal/domain/admin"
	"github.com/plotbay/plotbay-backend/pkg/errorx"
)

func (s *PostgresSuite) newAdmin(email, mobile string) *admin.Admin {
	s.T().Helper()

	a, err := admin.Register(admin.RegisterArgs{
		Name:     "Jane Doe",
		Email:    email,
		Mobile:   mobile,
		Password: "Str0ng!pwd",
	})
	s.Require().NoError(err)
	return a
}

func (s *PostgresSuite) TestSaveAdmin() {
	ctx := s.T().Context()

	a := s.newAdmin("jane@gmail.com", "9876543210")
	s.Require().NoError(s.repo.SaveAdmin(ctx, a))
	s.Empty(a.GetUncommittedEvents())

	saved, err := s.repo.GetAdminByEmail(ctx, "jane@gmail.com")
	s.Require().NoError(err)
	s.Equal(a.ID(), saved.ID())
	s.Equal("Jane Doe", saved.Name())
	s.Equal("9876543210", saved.Mobile())
	s.True(saved.IsActive())
	s.False(saved.IsDeleted())
	s.NoError(saved.ComparePassword("Str0ng!pwd"))
}

func (s *PostgresSuite) TestSaveAdmin_DuplicateEmail() {
	ctx := s.T().Context()

	s.Require().NoError(s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "9876543210")))

	err := s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "1112223334"))
	s.Require().Error(err)
	s.True(errorx.IsConflict(err))

	var xerr *errorx.Error
	s.Require().ErrorAs(err, &xerr)
	s.Contains(xerr.Fields, admin.FieldEmail)
	s.NotContains(xerr.Fields, admin.FieldMobile)

	// the first registration is unaffected
	saved, err := s.repo.GetAdminByEmail(ctx, "jane@gmail.com")
	s.Require().NoError(err)
	s.Equal("9876543210", saved.Mobile())
}

func (s *PostgresSuite) TestSaveAdmin_DuplicateMobile() {
	ctx := s.T().Context()

	s.Require().NoError(s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "9876543210")))

	err := s.repo.SaveAdmin(ctx, s.newAdmin("other@gmail.com", "9876543210"))
	s.Require().Error(err)

	var xerr *errorx.Error
	s.Require().ErrorAs(err, &xerr)
	s.Contains(xerr.Fields, admin.FieldMobile)
	s.NotContains(xerr.Fields, admin.FieldEmail)
}

func (s *PostgresSuite) TestSaveAdmin_DuplicateEmailAndMobile() {
	ctx := s.T().Context()

	s.Require().NoError(s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "9876543210")))

	err := s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "9876543210"))
	s.Require().Error(err)

	var xerr *errorx.Error
	s.Require().ErrorAs(err, &xerr)
	s.Contains(xerr.Fields, admin.FieldEmail)
	s.Contains(xerr.Fields, admin.FieldMobile)
}

func (s *PostgresSuite) TestSaveAdmin_PublishesEventToOutbox() {
	ctx := s.T().Context()

	s.Require().NoError(s.repo.SaveAdmin(ctx, s.newAdmin("jane@gmail.com", "9876543210")))

	var count int
	err := s.pgPool.QueryRow(ctx,
		`SELECT count(*) FROM "watermill_`+admin.EventStreamName+`"`).Scan(&count)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *PostgresSuite) TestGetAdminByEmail_NotFound() {
	_, err := s.repo.GetAdminByEmail(s.T().Context(), "nobody@gmail.com")
	s.Require().Error(err)
	s.True(errorx.IsCode(err, errorx.CodeNotFound))
}
