package api

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"folio/api/openapi"
	"folio/catalog"
	"folio/models"
)

const dashboardRecentProjects = 5

// Get admin dashboard summary
// (GET /api/admin/dashboard)
func (impl *ServerImpl) GetDashboard(ctx context.Context, request openapi.GetDashboardRequestObject) (openapi.GetDashboardResponseObject, error) {
	const op = "GetDashboard"
	projects, err := impl.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var uploads int64
	result := impl.db.WithContext(ctx).
		Model(&models.Image{}).
		Where("created_at > ?", time.Now().Add(-24*time.Hour)).
		Count(&uploads)
	if result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to count uploads, err=%w", op, result.Error)
	}

	// 目錄已經依精選與建立時間排序，最近的作品需要重新依建立時間排序
	recent := make([]models.Project, len(projects))
	copy(recent, projects)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > dashboardRecentProjects {
		recent = recent[:dashboardRecentProjects]
	}

	return openapi.GetDashboard200JSONResponse{
		TotalProjects: int64(len(projects)),
		FeaturedProjects: int64(lo.CountBy(projects, func(p models.Project) bool {
			return p.Featured
		})),
		Categories:         catalog.CountByCategory(projects),
		UploadsLastDay:     uploads,
		ActiveEditSessions: impl.editSessions.Count(),
		RecentProjects:     toProjects(recent),
	}, nil
}
