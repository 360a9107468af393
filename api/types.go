package api

import (
	"errors"
	"strings"

	"github.com/samber/lo"

	"folio/api/openapi"
	"folio/imageset"
	"folio/models"
)

var errTitleRequired = errors.New("title is required")

func toProject(project models.Project) openapi.Project {
	persisted := project.ImageSet().ToPersisted()
	technologies := project.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return openapi.Project{
		Id:           project.ID,
		Title:        project.Title,
		Description:  project.Description,
		Category:     project.Category,
		Technologies: technologies,
		DemoUrl:      project.DemoURL,
		RepoUrl:      project.RepoURL,
		Featured:     project.Featured,
		MainImage:    persisted.LegacyImage,
		Images:       persisted.Images,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
	}
}

func toProjects(projects []models.Project) []openapi.Project {
	return lo.Map(projects, func(p models.Project, _ int) openapi.Project {
		return toProject(p)
	})
}

func toEditSession(sessionID string, state *editState) openapi.EditSession {
	persisted := state.Images.ToPersisted()
	return openapi.EditSession{
		SessionId: sessionID,
		ProjectId: state.ProjectID,
		MainImage: persisted.LegacyImage,
		Images:    persisted.Images,
	}
}

// checkProjectInput 補充 binding tag 無法表達的檢查
func checkProjectInput(input *openapi.ProjectInput) error {
	if input == nil || strings.TrimSpace(input.Title) == "" {
		return errTitleRequired
	}
	return nil
}

func normalizeTechnologies(technologies []string) []string {
	return lo.Uniq(lo.FilterMap(technologies, func(tech string, _ int) (string, bool) {
		tech = strings.TrimSpace(tech)
		return tech, tech != ""
	}))
}

// persistedFromInput 將請求中的兩個圖片欄位整理成一致的狀態
func persistedFromInput(input openapi.ProjectInput) imageset.Persisted {
	return imageset.Load(imageset.Persisted{
		LegacyImage: input.Image,
		Images:      imageset.ParseImages(input.Images),
	}).ToPersisted()
}
