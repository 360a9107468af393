package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"folio/api/openapi"
	"folio/catalog"
	"folio/models"
)

// loadCatalog 取得所有公開的作品，精選作品排在前面，其餘依建立時間由新到舊
func (impl *ServerImpl) loadCatalog(ctx context.Context) ([]models.Project, error) {
	const op = "loadCatalog"
	if v, ok := impl.catalogCache.Get(catalogCacheKey); ok {
		if projects, ok := v.([]models.Project); ok {
			return projects, nil
		}
	}
	generation := impl.catalogGen.Load()
	var projects []models.Project
	result := impl.db.WithContext(ctx).
		Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: clause.Column{Name: "featured"}, Desc: true},
			{Column: clause.Column{Name: "created_at"}, Desc: true},
			{Column: clause.Column{Name: "id"}, Desc: false},
		}}).
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to list projects, err=%w", op, result.Error)
	}
	impl.cacheCatalog(generation, projects)
	return projects, nil
}

// List projects
// (GET /api/projects)
func (impl *ServerImpl) GetProjects(ctx context.Context, request openapi.GetProjectsRequestObject) (openapi.GetProjectsResponseObject, error) {
	projects, err := impl.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	var search string
	if request.Params.Search != nil {
		search = *request.Params.Search
	}
	var categories []string
	if request.Params.Category != nil {
		categories = *request.Params.Category
	}
	matched := catalog.Filter(projects, catalog.ParseQuery(search, categories))
	return openapi.GetProjects200JSONResponse{
		Count: len(matched),
		Items: toProjects(matched),
	}, nil
}

// List project categories
// (GET /api/projects/categories)
func (impl *ServerImpl) GetProjectCategories(ctx context.Context, request openapi.GetProjectCategoriesRequestObject) (openapi.GetProjectCategoriesResponseObject, error) {
	projects, err := impl.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return openapi.GetProjectCategories200JSONResponse{Categories: catalog.Categories(projects)}, nil
}

// Get project details
// (GET /api/projects/{projectID})
func (impl *ServerImpl) GetProject(ctx context.Context, request openapi.GetProjectRequestObject) (openapi.GetProjectResponseObject, error) {
	project, err := impl.findProject(ctx, request.ProjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return openapi.GetProject404JSONResponse{Message: "Project not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	return openapi.GetProject200JSONResponse(toProject(project)), nil
}

// Add a new project
// (POST /api/admin/projects)
func (impl *ServerImpl) PostProject(ctx context.Context, request openapi.PostProjectRequestObject) (openapi.PostProjectResponseObject, error) {
	const op = "PostProject"
	if err := checkProjectInput(request.Body); err != nil {
		return openapi.PostProject400JSONResponse{Message: err.Error()}, nil
	}
	project := models.Project{}
	impl.applyProjectInput(&project, *request.Body)
	project.SetImages(persistedFromInput(*request.Body))
	if result := impl.db.WithContext(ctx).Create(&project); result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to create project, err=%w", op, result.Error)
	}
	impl.invalidateCatalog()
	return openapi.PostProject201JSONResponse{
		Body:    toProject(project),
		Headers: openapi.PostProject201ResponseHeaders{Location: "/api/projects/" + project.ID.String()},
	}, nil
}

// Update a project
// (PUT /api/admin/projects/{projectID})
func (impl *ServerImpl) PutProject(ctx context.Context, request openapi.PutProjectRequestObject) (openapi.PutProjectResponseObject, error) {
	const op = "PutProject"
	if err := checkProjectInput(request.Body); err != nil {
		return openapi.PutProject400JSONResponse{Message: err.Error()}, nil
	}
	project, err := impl.findProject(ctx, request.ProjectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return openapi.PutProject404JSONResponse{Message: "Project not found"}, nil
	}
	if err != nil {
		return nil, err
	}
	impl.applyProjectInput(&project, *request.Body)
	result := impl.db.WithContext(ctx).
		Model(&project).
		Select("Title", "Description", "Category", "Technologies", "DemoURL", "RepoURL", "Featured", "UpdatedAt").
		Updates(&project)
	if result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to update project, err=%w", op, result.Error)
	}
	impl.invalidateCatalog()
	return openapi.PutProject200JSONResponse(toProject(project)), nil
}

// Delete a project
// (DELETE /api/admin/projects/{projectID})
func (impl *ServerImpl) DeleteProject(ctx context.Context, request openapi.DeleteProjectRequestObject) (openapi.DeleteProjectResponseObject, error) {
	const op = "DeleteProject"
	result := impl.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", request.ProjectID)
	if result.Error != nil {
		return nil, fmt.Errorf("[%s] Fail to delete project, err=%w", op, result.Error)
	}
	if result.RowsAffected == 0 {
		return openapi.DeleteProject404JSONResponse{Message: "Project not found"}, nil
	}
	impl.invalidateCatalog()
	return openapi.DeleteProject204Response{}, nil
}

// findProject 找不到作品時回傳 gorm.ErrRecordNotFound
func (impl *ServerImpl) findProject(ctx context.Context, projectID uuid.UUID) (models.Project, error) {
	const op = "findProject"
	var project models.Project
	result := impl.db.WithContext(ctx).First(&project, "id = ?", projectID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Project{}, gorm.ErrRecordNotFound
	}
	if result.Error != nil {
		return models.Project{}, fmt.Errorf("[%s] Fail to find project, err=%w", op, result.Error)
	}
	return project, nil
}

// applyProjectInput 將請求的文字欄位寫入作品，描述會經過 HTML 過濾
func (impl *ServerImpl) applyProjectInput(project *models.Project, input openapi.ProjectInput) {
	project.Title = strings.TrimSpace(input.Title)
	project.Description = impl.htmlChecker.Sanitize(input.Description)
	project.Category = strings.TrimSpace(input.Category)
	project.Technologies = normalizeTechnologies(input.Technologies)
	project.DemoURL = input.DemoUrl
	project.RepoURL = input.RepoUrl
	project.Featured = input.Featured
}
