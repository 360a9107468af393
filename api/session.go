package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"folio/adapters/auth"
	"folio/adapters/session"
	"folio/api/openapi"
	"folio/imageset"
	"folio/models"
)

const (
	errSessionNotFoundMessage = "Edit session not found"
	errProjectNotFoundMessage = "Project not found"
)

// Open an edit session for project images
// (POST /api/admin/projects/{projectID}/edit)
func (impl *ServerImpl) PostEditSession(ctx context.Context, request openapi.PostEditSessionRequestObject) (openapi.PostEditSessionResponseObject, error) {
	const op = "PostEditSession"
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("[%s] %w", op, auth.ErrMissingToken)
	}
	project, err := impl.findProject(ctx, request.ProjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return openapi.PostEditSession404JSONResponse{Message: errProjectNotFoundMessage}, nil
	}
	if err != nil {
		return nil, err
	}
	state := &editState{ProjectID: project.ID, Images: project.ImageSet()}
	editSession, err := impl.editSessions.Create(identity.Subject, state)
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to create edit session, err=%w", op, err)
	}
	slog.Info("Open edit session", slog.String("session", editSession.ID), slog.String("project", project.ID.String()), slog.String("user", identity.Subject))
	return openapi.PostEditSession201JSONResponse{
		Body:    toEditSession(editSession.ID, state),
		Headers: openapi.PostEditSession201ResponseHeaders{Location: "/api/admin/edit/" + editSession.ID},
	}, nil
}

// Get the current state of an edit session
// (GET /api/admin/edit/{sessionID})
func (impl *ServerImpl) GetEditSession(ctx context.Context, request openapi.GetEditSessionRequestObject) (openapi.GetEditSessionResponseObject, error) {
	editSession, err := impl.getEditSession(ctx, request.SessionID)
	if err != nil {
		return openapi.GetEditSession404JSONResponse{Message: errSessionNotFoundMessage}, nil
	}
	var resp openapi.EditSession
	_ = editSession.Do(func(state *editState) error {
		resp = toEditSession(editSession.ID, state)
		return nil
	})
	return openapi.GetEditSession200JSONResponse(resp), nil
}

// Discard an edit session
// (DELETE /api/admin/edit/{sessionID})
func (impl *ServerImpl) DeleteEditSession(ctx context.Context, request openapi.DeleteEditSessionRequestObject) (openapi.DeleteEditSessionResponseObject, error) {
	editSession, err := impl.getEditSession(ctx, request.SessionID)
	if err != nil {
		return openapi.DeleteEditSession404JSONResponse{Message: errSessionNotFoundMessage}, nil
	}
	impl.editSessions.Delete(editSession.ID)
	return openapi.DeleteEditSession204Response{}, nil
}

// Upload images and append them to an edit session
// (POST /api/admin/edit/{sessionID}/images)
func (impl *ServerImpl) PostEditSessionImages(ctx context.Context, request openapi.PostEditSessionImagesRequestObject) (openapi.PostEditSessionImagesResponseObject, error) {
	const op = "PostEditSessionImages"
	editSession, err := impl.getEditSession(ctx, request.SessionID)
	if err != nil {
		return openapi.PostEditSessionImages404JSONResponse{Message: errSessionNotFoundMessage}, nil
	}
	// 先檢查所有檔案，任何一個不符合條件就不傳送任何檔案
	files, err := impl.readImageParts(request.Body)
	if err != nil {
		return postEditSessionImagesError(op, err)
	}
	if len(files) == 0 {
		return openapi.PostEditSessionImages400JSONResponse{Message: "No files provided"}, nil
	}

	var resp openapi.EditSession
	err = impl.withUploadQuota(ctx, editSession.Owner, len(files), func(uploader imageset.Uploader) error {
		return editSession.Do(func(state *editState) error {
			refs, err := state.Images.AppendUploads(ctx, uploader, files)
			if err != nil {
				return err
			}
			resp = toEditSession(editSession.ID, state)
			resp.Uploaded = refs
			return nil
		})
	})
	if err != nil {
		return postEditSessionImagesError(op, err)
	}
	return openapi.PostEditSessionImages200JSONResponse(resp), nil
}

func postEditSessionImagesError(op string, err error) (openapi.PostEditSessionImagesResponseObject, error) {
	switch status, message := classifyUploadError(op, err); status {
	case http.StatusBadRequest:
		return openapi.PostEditSessionImages400JSONResponse{Message: message}, nil
	case http.StatusTooManyRequests:
		return openapi.PostEditSessionImages429JSONResponse{Message: message}, nil
	case http.StatusBadGateway:
		return openapi.PostEditSessionImages502JSONResponse{Message: message}, nil
	}
	return nil, err
}

// Remove an image from an edit session
// (DELETE /api/admin/edit/{sessionID}/images/{index})
func (impl *ServerImpl) DeleteEditSessionImage(ctx context.Context, request openapi.DeleteEditSessionImageRequestObject) (openapi.DeleteEditSessionImageResponseObject, error) {
	resp, err := impl.mutateEditSession(ctx, request.SessionID, func(set *imageset.Set) error {
		return set.Remove(request.Index)
	})
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return openapi.DeleteEditSessionImage404JSONResponse{Message: errSessionNotFoundMessage}, nil
	case errors.Is(err, imageset.ErrOutOfRange):
		return openapi.DeleteEditSessionImage400JSONResponse{Message: imageset.ErrOutOfRange.Error()}, nil
	case err != nil:
		return nil, err
	}
	return openapi.DeleteEditSessionImage200JSONResponse(resp), nil
}

// Set an image as the main image of an edit session
// (POST /api/admin/edit/{sessionID}/images/{index}/main)
func (impl *ServerImpl) PostEditSessionImageMain(ctx context.Context, request openapi.PostEditSessionImageMainRequestObject) (openapi.PostEditSessionImageMainResponseObject, error) {
	resp, err := impl.mutateEditSession(ctx, request.SessionID, func(set *imageset.Set) error {
		return set.PromoteToMain(request.Index)
	})
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return openapi.PostEditSessionImageMain404JSONResponse{Message: errSessionNotFoundMessage}, nil
	case errors.Is(err, imageset.ErrOutOfRange):
		return openapi.PostEditSessionImageMain400JSONResponse{Message: imageset.ErrOutOfRange.Error()}, nil
	case err != nil:
		return nil, err
	}
	return openapi.PostEditSessionImageMain200JSONResponse(resp), nil
}

// Save an edit session back to the project
// (POST /api/admin/edit/{sessionID}/save)
func (impl *ServerImpl) PostEditSessionSave(ctx context.Context, request openapi.PostEditSessionSaveRequestObject) (openapi.PostEditSessionSaveResponseObject, error) {
	const op = "PostEditSessionSave"
	editSession, err := impl.getEditSession(ctx, request.SessionID)
	if err != nil {
		return openapi.PostEditSessionSave404JSONResponse{Message: errSessionNotFoundMessage}, nil
	}
	var project models.Project
	err = editSession.Do(func(state *editState) error {
		persisted := state.Images.ToPersisted()
		// 兩個圖片欄位必須在同一次寫入中一起更新
		result := impl.db.WithContext(ctx).
			Model(&models.Project{ID: state.ProjectID}).
			Select("Image", "Images", "UpdatedAt").
			Updates(models.Project{Image: persisted.LegacyImage, Images: persisted.Images, UpdatedAt: time.Now()})
		if result.Error != nil {
			return fmt.Errorf("fail to save project images, err=%w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if result := impl.db.WithContext(ctx).First(&project, "id = ?", state.ProjectID); result.Error != nil {
			return fmt.Errorf("fail to reload project, err=%w", result.Error)
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		impl.editSessions.Delete(editSession.ID)
		return openapi.PostEditSessionSave404JSONResponse{Message: errProjectNotFoundMessage}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("[%s] %w", op, err)
	}
	impl.editSessions.Delete(editSession.ID)
	impl.invalidateCatalog()
	slog.Info("Save edit session", slog.String("session", editSession.ID), slog.String("project", project.ID.String()), slog.Int("images", len(project.Images)))
	return openapi.PostEditSessionSave200JSONResponse(toProject(project)), nil
}

// getEditSession 取得目前管理者的編輯 session，不存在或不屬於目前管理者時回傳 session.ErrSessionNotFound
func (impl *ServerImpl) getEditSession(ctx context.Context, sessionID string) (*session.Session[*editState], error) {
	identity, ok := auth.IdentityFromContext(ctx)
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	return impl.editSessions.Get(sessionID, identity.Subject)
}

func (impl *ServerImpl) mutateEditSession(ctx context.Context, sessionID string, mutate func(set *imageset.Set) error) (openapi.EditSession, error) {
	editSession, err := impl.getEditSession(ctx, sessionID)
	if err != nil {
		return openapi.EditSession{}, err
	}
	var resp openapi.EditSession
	err = editSession.Do(func(state *editState) error {
		if err := mutate(state.Images); err != nil {
			return err
		}
		resp = toEditSession(editSession.ID, state)
		return nil
	})
	return resp, err
}
