package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"urb_denuncias/internal/adapter/persistence/tabular"
	"urb_denuncias/internal/domain/entities"
	mock_interfaces "urb_denuncias/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestComplaintUseCase_Register(t *testing.T) {
	t.Run("missing origin", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.Register(context.Background(), entities.Complaint{Description: "lixo na calçada"})
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.Register(context.Background(), entities.Complaint{Origin: "Telefone", Description: "   "})
		if !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)

		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(entities.Complaint{}, errors.New("db"))

		_, err := uc.Register(context.Background(), entities.Complaint{Origin: "Telefone", Description: "lixo"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success forces intake defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)

		repo.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(entities.Complaint{})).DoAndReturn(
			func(_ context.Context, c entities.Complaint) (entities.Complaint, error) {
				if c.ID != 0 || c.ExternalID != "" || !c.CreatedAt.IsZero() {
					t.Fatalf("expected identity fields zeroed, got %+v", c)
				}
				if c.Status != entities.ComplaintStatusPendente {
					t.Fatalf("expected Pendente, got %s", c.Status)
				}
				if c.Reincidences != nil {
					t.Fatalf("expected no reincidences at intake")
				}
				if c.Origin != "Telefone" || c.Description != "lixo na calçada" {
					t.Fatalf("expected trimmed fields, got %+v", c)
				}
				c.ID = 7
				c.ExternalID = "0007/2026"
				return c, nil
			},
		)

		res, err := uc.Register(context.Background(), entities.Complaint{
			ID:          99,
			ExternalID:  "forged",
			Origin:      " Telefone ",
			Description: " lixo na calçada ",
			Status:      entities.ComplaintStatusConcluida,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 7 || res.ExternalID != "0007/2026" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestComplaintUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidComplaintID) {
			t.Fatalf("expected ErrInvalidComplaintID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Complaint{}, tabular.ErrNotFound)

		_, err := uc.GetByID(context.Background(), 1)
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), 3).Return(entities.Complaint{ID: 3}, nil)

		res, err := uc.GetByID(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 3 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestComplaintUseCase_UpdateDetails(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.UpdateDetails(context.Background(), -1, entities.ComplaintPatch{})
		if !errors.Is(err, ErrInvalidComplaintID) {
			t.Fatalf("expected ErrInvalidComplaintID, got %v", err)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		bad := entities.ComplaintStatus("Resolvida")
		_, err := uc.UpdateDetails(context.Background(), 1, entities.ComplaintPatch{Status: &bad})
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("reincidences stripped from patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)

		repo.EXPECT().Update(gomock.Any(), 1, gomock.AssignableToTypeOf(entities.ComplaintPatch{})).DoAndReturn(
			func(_ context.Context, _ int, patch entities.ComplaintPatch) (entities.Complaint, error) {
				if patch.Reincidences != nil {
					t.Fatalf("expected reincidences removed from the patch")
				}
				if patch.Description == nil || *patch.Description != "novo texto" {
					t.Fatalf("expected description kept, got %+v", patch)
				}
				return entities.Complaint{ID: 1}, nil
			},
		)

		desc := "novo texto"
		hist := []entities.Reincidence{{Origin: "x", Description: "y"}}
		_, err := uc.UpdateDetails(context.Background(), 1, entities.ComplaintPatch{Description: &desc, Reincidences: &hist})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), 9, gomock.Any()).Return(entities.Complaint{}, tabular.ErrNotFound)

		_, err := uc.UpdateDetails(context.Background(), 9, entities.ComplaintPatch{})
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})
}

func TestComplaintUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		if err := uc.Delete(context.Background(), 0); !errors.Is(err, ErrInvalidComplaintID) {
			t.Fatalf("expected ErrInvalidComplaintID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), 5).Return(tabular.ErrNotFound)

		if err := uc.Delete(context.Background(), 5); !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		if err := uc.Delete(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestComplaintUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid status never touches the table", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.ChangeStatus(context.Background(), 1, entities.ComplaintStatus("Cancelada"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("every enumerated status accepted", func(t *testing.T) {
		for _, status := range entities.ComplaintStatuses {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
			uc := NewComplaintUseCase(repo, nil)
			repo.EXPECT().Update(gomock.Any(), 1, gomock.Any()).Return(entities.Complaint{ID: 1, Status: status}, nil)

			res, err := uc.ChangeStatus(context.Background(), 1, status)
			if err != nil {
				t.Fatalf("status %s: unexpected error: %v", status, err)
			}
			if res.Status != status {
				t.Fatalf("status %s: got %s", status, res.Status)
			}
			ctrl.Finish()
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().Update(gomock.Any(), 2, gomock.Any()).Return(entities.Complaint{}, tabular.ErrNotFound)

		_, err := uc.ChangeStatus(context.Background(), 2, entities.ComplaintStatusConcluida)
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})
}

func TestComplaintUseCase_AppendReincidence(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewComplaintUseCase(nil, nil)
		_, err := uc.AppendReincidence(context.Background(), 1, "  ", "voltou")
		if !errors.Is(err, ErrInvalidReincidence) {
			t.Fatalf("expected ErrInvalidReincidence, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), 4).Return(entities.Complaint{}, tabular.ErrNotFound)

		_, err := uc.AppendReincidence(context.Background(), 4, "Telefone", "voltou a ocorrer")
		if !errors.Is(err, ErrComplaintNotFound) {
			t.Fatalf("expected ErrComplaintNotFound, got %v", err)
		}
	})

	t.Run("appends after existing history and reopens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)

		stored := entities.Complaint{
			ID:     4,
			Status: entities.ComplaintStatusArquivada,
			Reincidences: []entities.Reincidence{
				{Timestamp: "2026-01-10 08:00:00", Origin: "Telefone", Description: "primeira volta"},
			},
		}
		repo.EXPECT().GetByID(gomock.Any(), 4).Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), 4, gomock.AssignableToTypeOf(entities.ComplaintPatch{})).DoAndReturn(
			func(_ context.Context, _ int, patch entities.ComplaintPatch) (entities.Complaint, error) {
				if patch.Status == nil || *patch.Status != entities.ComplaintStatusEmAndamento {
					t.Fatalf("expected Em Andamento, got %+v", patch.Status)
				}
				if patch.Reincidences == nil || len(*patch.Reincidences) != 2 {
					t.Fatalf("expected two entries, got %+v", patch.Reincidences)
				}
				hist := *patch.Reincidences
				if hist[0].Description != "primeira volta" {
					t.Fatalf("expected existing entry preserved first, got %+v", hist[0])
				}
				if hist[1].Origin != "Ofício" || hist[1].Description != "voltou de novo" {
					t.Fatalf("unexpected new entry: %+v", hist[1])
				}
				if hist[1].Timestamp == "" {
					t.Fatalf("expected stamped timestamp")
				}
				stored.Status = *patch.Status
				stored.Reincidences = hist
				return stored, nil
			},
		)

		res, err := uc.AppendReincidence(context.Background(), 4, " Ofício ", " voltou de novo ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ComplaintStatusEmAndamento {
			t.Fatalf("expected reopened case, got %s", res.Status)
		}
	})
}

func TestComplaintUseCase_AttachPhoto(t *testing.T) {
	t.Run("photo store missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		uc := NewComplaintUseCase(repo, nil)

		_, err := uc.AttachPhoto(context.Background(), 1, "a.jpg", "image/jpeg", 3, strings.NewReader("abc"))
		if err == nil {
			t.Fatalf("expected error when no photo store is configured")
		}
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		photos := mock_interfaces.NewMockIPhotoStore(ctrl)
		uc := NewComplaintUseCase(repo, photos)

		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Complaint{ID: 1}, nil)
		photos.EXPECT().Save(gomock.Any(), "a.jpg", "image/jpeg", int64(3), gomock.Any()).Return("", errors.New("disk"))

		_, err := uc.AttachPhoto(context.Background(), 1, "a.jpg", "image/jpeg", 3, strings.NewReader("abc"))
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})

	t.Run("appends reference to existing photos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIComplaintRepository(ctrl)
		photos := mock_interfaces.NewMockIPhotoStore(ctrl)
		uc := NewComplaintUseCase(repo, photos)

		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Complaint{ID: 1, Photos: []string{"old.jpg"}}, nil)
		photos.EXPECT().Save(gomock.Any(), "a.jpg", "image/jpeg", int64(3), gomock.Any()).Return("uploads/new.jpg", nil)
		repo.EXPECT().Update(gomock.Any(), 1, gomock.AssignableToTypeOf(entities.ComplaintPatch{})).DoAndReturn(
			func(_ context.Context, _ int, patch entities.ComplaintPatch) (entities.Complaint, error) {
				if patch.Photos == nil || len(*patch.Photos) != 2 {
					t.Fatalf("expected two photos, got %+v", patch.Photos)
				}
				got := *patch.Photos
				if got[0] != "old.jpg" || got[1] != "uploads/new.jpg" {
					t.Fatalf("unexpected photo list: %v", got)
				}
				return entities.Complaint{ID: 1, Photos: got}, nil
			},
		)

		res, err := uc.AttachPhoto(context.Background(), 1, "a.jpg", "image/jpeg", 3, strings.NewReader("abc"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Photos) != 2 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
