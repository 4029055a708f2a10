package usecase

import (
	"context"

	"chat-assistant/internal/workspace"
	repo "chat-assistant/internal/workspace/repository"
)

// coalesce returns newVal when set, otherwise the existing value. Used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

// checkOwner classifies a row looked up by id: absent, someone else's, or the caller's.
func (uc *implUseCase) checkOwner(ownerID, userID string) error {
	if ownerID == "" {
		return workspace.ErrNotFound
	}
	if ownerID != userID {
		return workspace.ErrForbidden
	}
	return nil
}

// categoryID resolves a category name to the user's category id, creating it on demand.
func (uc *implUseCase) categoryID(ctx context.Context, userID, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	category, err := uc.repo.FindOrCreateCategory(ctx, repo.FindOrCreateCategoryOptions{UserID: userID, Name: name})
	if err != nil {
		return "", err
	}
	return category.ID, nil
}
