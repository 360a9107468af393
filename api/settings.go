package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm/clause"

	"folio/api/openapi"
	"folio/models"
)

const maxSettingKeyLength = 100

func (impl *ServerImpl) listSettings(ctx context.Context) (openapi.Settings, error) {
	const op = "listSettings"
	var settings []models.Setting
	if result := impl.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&settings); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list settings, err=%w", op, result.Error)
	}
	return lo.SliceToMap(settings, func(s models.Setting) (string, string) {
		return s.Key, s.Value
	}), nil
}

// Get site settings
// (GET /api/settings)
func (impl *ServerImpl) GetSettings(ctx context.Context, request openapi.GetSettingsRequestObject) (openapi.GetSettingsResponseObject, error) {
	settings, err := impl.listSettings(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetSettings200JSONResponse(settings), nil
}

// Get site settings
// (GET /api/admin/settings)
func (impl *ServerImpl) GetAdminSettings(ctx context.Context, request openapi.GetAdminSettingsRequestObject) (openapi.GetAdminSettingsResponseObject, error) {
	settings, err := impl.listSettings(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetAdminSettings200JSONResponse(settings), nil
}

// Update site settings, keys not in the request are kept
// (PUT /api/admin/settings)
func (impl *ServerImpl) PutSettings(ctx context.Context, request openapi.PutSettingsRequestObject) (openapi.PutSettingsResponseObject, error) {
	const op = "PutSettings"
	if request.Body == nil || len(*request.Body) == 0 {
		return openapi.PutSettings400JSONResponse{Message: "No settings provided"}, nil
	}
	settings := make([]models.Setting, 0, len(*request.Body))
	for key, value := range *request.Body {
		key = strings.TrimSpace(key)
		if key == "" || len(key) > maxSettingKeyLength {
			return openapi.PutSettings400JSONResponse{Message: fmt.Sprintf("Invalid setting key: %q", key)}, nil
		}
		settings = append(settings, models.Setting{Key: key, Value: value})
	}
	result := impl.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&settings)
	if result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to save settings, err=%w", op, result.Error)
	}
	all, err := impl.listSettings(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.PutSettings200JSONResponse(all), nil
}
