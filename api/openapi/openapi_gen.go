// Package openapi provides primitives to interact with the openapi HTTP API.
//
// Code generated by unknown module path version unknown version DO NOT EDIT.
package openapi

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	strictgin "github.com/oapi-codegen/runtime/strictmiddleware/gin"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Categories defines model for Categories.
type Categories struct {
	Categories []string `json:"categories"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	ActiveEditSessions int            `json:"activeEditSessions"`
	Categories         map[string]int `json:"categories"`
	FeaturedProjects   int64          `json:"featuredProjects"`
	RecentProjects     []Project      `json:"recentProjects"`
	TotalProjects      int64          `json:"totalProjects"`
	UploadsLastDay     int64          `json:"uploadsLastDay"`
}

// EditSession defines model for EditSession.
type EditSession struct {
	Images    []string           `json:"images"`
	MainImage *string            `json:"mainImage"`
	ProjectId openapi_types.UUID `json:"projectId"`
	SessionId string             `json:"sessionId"`

	// Uploaded Images appended by this request, in upload order
	Uploaded []string `json:"uploaded,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Message string `json:"message"`
}

// Project defines model for Project.
type Project struct {
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
	DemoUrl   string    `json:"demoUrl"`

	// Description Sanitized HTML
	Description string             `json:"description"`
	Featured    bool               `json:"featured"`
	Id          openapi_types.UUID `json:"id"`
	Images      []string           `json:"images"`

	// MainImage Always the first entry of images, null when there are no images
	MainImage    *string   `json:"mainImage"`
	RepoUrl      string    `json:"repoUrl"`
	Technologies []string  `json:"technologies"`
	Title        string    `json:"title"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProjectInput defines model for ProjectInput.
type ProjectInput struct {
	Category    string `binding:"max=100" json:"category,omitempty"`
	DemoUrl     string `binding:"omitempty,url" json:"demoUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Featured    bool   `json:"featured,omitempty"`

	// Image Legacy single image, only used when creating a project
	Image *string `json:"image"`

	// Images Image list, only used when creating a project. Malformed values are treated as an empty list.
	Images       json.RawMessage `json:"images,omitempty"`
	RepoUrl      string          `binding:"omitempty,url" json:"repoUrl,omitempty"`
	Technologies []string        `json:"technologies,omitempty"`
	Title        string          `binding:"required,max=255" json:"title"`
}

// ProjectList defines model for ProjectList.
type ProjectList struct {
	Count int       `json:"count"`
	Items []Project `json:"items"`
}

// Settings defines model for Settings.
type Settings map[string]string

// UploadedImage defines model for UploadedImage.
type UploadedImage struct {
	Url string `json:"url"`
}

// ImageIndex defines model for ImageIndex.
type ImageIndex = int

// ProjectID defines model for ProjectID.
type ProjectID = openapi_types.UUID

// SessionID defines model for SessionID.
type SessionID = string

// PostEditSessionImagesMultipartBody defines parameters for PostEditSessionImages.
type PostEditSessionImagesMultipartBody struct {
	Files *[]openapi_types.File `json:"files,omitempty"`
}

// GetProjectsParams defines parameters for GetProjects.
type GetProjectsParams struct {
	// Search Case insensitive keyword matched against title, description text, technologies and category
	Search *string `form:"search,omitempty" json:"search,omitempty"`

	// Category Categories to include, repeated or comma separated
	Category *[]string `form:"category,omitempty" json:"category,omitempty"`
}

// PostEditSessionImagesMultipartRequestBody defines body for PostEditSessionImages for multipart/form-data ContentType.
type PostEditSessionImagesMultipartRequestBody PostEditSessionImagesMultipartBody

// PostProjectJSONRequestBody defines body for PostProject for application/json ContentType.
type PostProjectJSONRequestBody = ProjectInput

// PutProjectJSONRequestBody defines body for PutProject for application/json ContentType.
type PutProjectJSONRequestBody = ProjectInput

// PutSettingsJSONRequestBody defines body for PutSettings for application/json ContentType.
type PutSettingsJSONRequestBody = Settings

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Get admin dashboard summary
	// (GET /api/admin/dashboard)
	GetDashboard(c *gin.Context)
	// Discard an edit session
	// (DELETE /api/admin/edit/{sessionID})
	DeleteEditSession(c *gin.Context, sessionID SessionID)
	// Get the current state of an edit session
	// (GET /api/admin/edit/{sessionID})
	GetEditSession(c *gin.Context, sessionID SessionID)
	// Upload images and append them to an edit session
	// (POST /api/admin/edit/{sessionID}/images)
	PostEditSessionImages(c *gin.Context, sessionID SessionID)
	// Remove an image from an edit session
	// (DELETE /api/admin/edit/{sessionID}/images/{index})
	DeleteEditSessionImage(c *gin.Context, sessionID SessionID, index ImageIndex)
	// Set an image as the main image of an edit session
	// (POST /api/admin/edit/{sessionID}/images/{index}/main)
	PostEditSessionImageMain(c *gin.Context, sessionID SessionID, index ImageIndex)
	// Save an edit session back to the project
	// (POST /api/admin/edit/{sessionID}/save)
	PostEditSessionSave(c *gin.Context, sessionID SessionID)
	// Upload a standalone image
	// (POST /api/admin/images)
	PostImage(c *gin.Context)
	// Add a new project
	// (POST /api/admin/projects)
	PostProject(c *gin.Context)
	// Delete a project
	// (DELETE /api/admin/projects/{projectID})
	DeleteProject(c *gin.Context, projectID ProjectID)
	// Update a project
	// (PUT /api/admin/projects/{projectID})
	PutProject(c *gin.Context, projectID ProjectID)
	// Open an edit session for project images
	// (POST /api/admin/projects/{projectID}/edit)
	PostEditSession(c *gin.Context, projectID ProjectID)
	// Get site settings
	// (GET /api/admin/settings)
	GetAdminSettings(c *gin.Context)
	// Update site settings, keys not in the request are kept
	// (PUT /api/admin/settings)
	PutSettings(c *gin.Context)
	// List projects
	// (GET /api/projects)
	GetProjects(c *gin.Context, params GetProjectsParams)
	// List project categories
	// (GET /api/projects/categories)
	GetProjectCategories(c *gin.Context)
	// Get project details
	// (GET /api/projects/{projectID})
	GetProject(c *gin.Context, projectID ProjectID)
	// Get site settings
	// (GET /api/settings)
	GetSettings(c *gin.Context)
	// Health check
	// (GET /healthcheck)
	GetHealthcheck(c *gin.Context)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

// GetDashboard operation middleware
func (siw *ServerInterfaceWrapper) GetDashboard(c *gin.Context) {

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetDashboard(c)
}

// DeleteEditSession operation middleware
func (siw *ServerInterfaceWrapper) DeleteEditSession(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.DeleteEditSession(c, sessionID)
}

// GetEditSession operation middleware
func (siw *ServerInterfaceWrapper) GetEditSession(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetEditSession(c, sessionID)
}

// PostEditSessionImages operation middleware
func (siw *ServerInterfaceWrapper) PostEditSessionImages(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostEditSessionImages(c, sessionID)
}

// DeleteEditSessionImage operation middleware
func (siw *ServerInterfaceWrapper) DeleteEditSessionImage(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	// ------------- Path parameter "index" -------------
	var index ImageIndex

	err = runtime.BindStyledParameterWithOptions("simple", "index", c.Param("index"), &index, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter index: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.DeleteEditSessionImage(c, sessionID, index)
}

// PostEditSessionImageMain operation middleware
func (siw *ServerInterfaceWrapper) PostEditSessionImageMain(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	// ------------- Path parameter "index" -------------
	var index ImageIndex

	err = runtime.BindStyledParameterWithOptions("simple", "index", c.Param("index"), &index, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter index: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostEditSessionImageMain(c, sessionID, index)
}

// PostEditSessionSave operation middleware
func (siw *ServerInterfaceWrapper) PostEditSessionSave(c *gin.Context) {

	var err error

	// ------------- Path parameter "sessionID" -------------
	var sessionID SessionID

	err = runtime.BindStyledParameterWithOptions("simple", "sessionID", c.Param("sessionID"), &sessionID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostEditSessionSave(c, sessionID)
}

// PostImage operation middleware
func (siw *ServerInterfaceWrapper) PostImage(c *gin.Context) {

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostImage(c)
}

// PostProject operation middleware
func (siw *ServerInterfaceWrapper) PostProject(c *gin.Context) {

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostProject(c)
}

// DeleteProject operation middleware
func (siw *ServerInterfaceWrapper) DeleteProject(c *gin.Context) {

	var err error

	// ------------- Path parameter "projectID" -------------
	var projectID ProjectID

	err = runtime.BindStyledParameterWithOptions("simple", "projectID", c.Param("projectID"), &projectID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter projectID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.DeleteProject(c, projectID)
}

// PutProject operation middleware
func (siw *ServerInterfaceWrapper) PutProject(c *gin.Context) {

	var err error

	// ------------- Path parameter "projectID" -------------
	var projectID ProjectID

	err = runtime.BindStyledParameterWithOptions("simple", "projectID", c.Param("projectID"), &projectID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter projectID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PutProject(c, projectID)
}

// PostEditSession operation middleware
func (siw *ServerInterfaceWrapper) PostEditSession(c *gin.Context) {

	var err error

	// ------------- Path parameter "projectID" -------------
	var projectID ProjectID

	err = runtime.BindStyledParameterWithOptions("simple", "projectID", c.Param("projectID"), &projectID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter projectID: %w", err), http.StatusBadRequest)
		return
	}

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PostEditSession(c, projectID)
}

// GetAdminSettings operation middleware
func (siw *ServerInterfaceWrapper) GetAdminSettings(c *gin.Context) {

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetAdminSettings(c)
}

// PutSettings operation middleware
func (siw *ServerInterfaceWrapper) PutSettings(c *gin.Context) {

	c.Set(BearerAuthScopes, []string{})

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.PutSettings(c)
}

// GetProjects operation middleware
func (siw *ServerInterfaceWrapper) GetProjects(c *gin.Context) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetProjectsParams

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", c.Request.URL.Query(), &params.Search)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter search: %w", err), http.StatusBadRequest)
		return
	}

	// ------------- Optional query parameter "category" -------------

	err = runtime.BindQueryParameter("form", true, false, "category", c.Request.URL.Query(), &params.Category)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter category: %w", err), http.StatusBadRequest)
		return
	}

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetProjects(c, params)
}

// GetProjectCategories operation middleware
func (siw *ServerInterfaceWrapper) GetProjectCategories(c *gin.Context) {

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetProjectCategories(c)
}

// GetProject operation middleware
func (siw *ServerInterfaceWrapper) GetProject(c *gin.Context) {

	var err error

	// ------------- Path parameter "projectID" -------------
	var projectID ProjectID

	err = runtime.BindStyledParameterWithOptions("simple", "projectID", c.Param("projectID"), &projectID, runtime.BindStyledParameterOptions{Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter projectID: %w", err), http.StatusBadRequest)
		return
	}

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetProject(c, projectID)
}

// GetSettings operation middleware
func (siw *ServerInterfaceWrapper) GetSettings(c *gin.Context) {

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetSettings(c)
}

// GetHealthcheck operation middleware
func (siw *ServerInterfaceWrapper) GetHealthcheck(c *gin.Context) {

	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return
		}
	}

	siw.Handler.GetHealthcheck(c)
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, gin.H{"msg": err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/api/admin/dashboard", wrapper.GetDashboard)
	router.DELETE(options.BaseURL+"/api/admin/edit/:sessionID", wrapper.DeleteEditSession)
	router.GET(options.BaseURL+"/api/admin/edit/:sessionID", wrapper.GetEditSession)
	router.POST(options.BaseURL+"/api/admin/edit/:sessionID/images", wrapper.PostEditSessionImages)
	router.DELETE(options.BaseURL+"/api/admin/edit/:sessionID/images/:index", wrapper.DeleteEditSessionImage)
	router.POST(options.BaseURL+"/api/admin/edit/:sessionID/images/:index/main", wrapper.PostEditSessionImageMain)
	router.POST(options.BaseURL+"/api/admin/edit/:sessionID/save", wrapper.PostEditSessionSave)
	router.POST(options.BaseURL+"/api/admin/images", wrapper.PostImage)
	router.POST(options.BaseURL+"/api/admin/projects", wrapper.PostProject)
	router.DELETE(options.BaseURL+"/api/admin/projects/:projectID", wrapper.DeleteProject)
	router.PUT(options.BaseURL+"/api/admin/projects/:projectID", wrapper.PutProject)
	router.POST(options.BaseURL+"/api/admin/projects/:projectID/edit", wrapper.PostEditSession)
	router.GET(options.BaseURL+"/api/admin/settings", wrapper.GetAdminSettings)
	router.PUT(options.BaseURL+"/api/admin/settings", wrapper.PutSettings)
	router.GET(options.BaseURL+"/api/projects", wrapper.GetProjects)
	router.GET(options.BaseURL+"/api/projects/categories", wrapper.GetProjectCategories)
	router.GET(options.BaseURL+"/api/projects/:projectID", wrapper.GetProject)
	router.GET(options.BaseURL+"/api/settings", wrapper.GetSettings)
	router.GET(options.BaseURL+"/healthcheck", wrapper.GetHealthcheck)
}

type GetDashboardRequestObject struct {
}

type GetDashboardResponseObject interface {
	VisitGetDashboardResponse(w http.ResponseWriter) error
}

type GetDashboard200JSONResponse Dashboard

func (response GetDashboard200JSONResponse) VisitGetDashboardResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEditSessionRequestObject struct {
	SessionID SessionID `json:"sessionID"`
}

type DeleteEditSessionResponseObject interface {
	VisitDeleteEditSessionResponse(w http.ResponseWriter) error
}

type DeleteEditSession204Response struct {
}

func (response DeleteEditSession204Response) VisitDeleteEditSessionResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type DeleteEditSession404JSONResponse Error

func (response DeleteEditSession404JSONResponse) VisitDeleteEditSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetEditSessionRequestObject struct {
	SessionID SessionID `json:"sessionID"`
}

type GetEditSessionResponseObject interface {
	VisitGetEditSessionResponse(w http.ResponseWriter) error
}

type GetEditSession200JSONResponse EditSession

func (response GetEditSession200JSONResponse) VisitGetEditSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetEditSession404JSONResponse Error

func (response GetEditSession404JSONResponse) VisitGetEditSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImagesRequestObject struct {
	SessionID SessionID `json:"sessionID"`
	Body      *multipart.Reader
}

type PostEditSessionImagesResponseObject interface {
	VisitPostEditSessionImagesResponse(w http.ResponseWriter) error
}

type PostEditSessionImages200JSONResponse EditSession

func (response PostEditSessionImages200JSONResponse) VisitPostEditSessionImagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImages400JSONResponse Error

func (response PostEditSessionImages400JSONResponse) VisitPostEditSessionImagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImages404JSONResponse Error

func (response PostEditSessionImages404JSONResponse) VisitPostEditSessionImagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImages429JSONResponse Error

func (response PostEditSessionImages429JSONResponse) VisitPostEditSessionImagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(429)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImages502JSONResponse Error

func (response PostEditSessionImages502JSONResponse) VisitPostEditSessionImagesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEditSessionImageRequestObject struct {
	SessionID SessionID  `json:"sessionID"`
	Index     ImageIndex `json:"index"`
}

type DeleteEditSessionImageResponseObject interface {
	VisitDeleteEditSessionImageResponse(w http.ResponseWriter) error
}

type DeleteEditSessionImage200JSONResponse EditSession

func (response DeleteEditSessionImage200JSONResponse) VisitDeleteEditSessionImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEditSessionImage400JSONResponse Error

func (response DeleteEditSessionImage400JSONResponse) VisitDeleteEditSessionImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type DeleteEditSessionImage404JSONResponse Error

func (response DeleteEditSessionImage404JSONResponse) VisitDeleteEditSessionImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImageMainRequestObject struct {
	SessionID SessionID  `json:"sessionID"`
	Index     ImageIndex `json:"index"`
}

type PostEditSessionImageMainResponseObject interface {
	VisitPostEditSessionImageMainResponse(w http.ResponseWriter) error
}

type PostEditSessionImageMain200JSONResponse EditSession

func (response PostEditSessionImageMain200JSONResponse) VisitPostEditSessionImageMainResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImageMain400JSONResponse Error

func (response PostEditSessionImageMain400JSONResponse) VisitPostEditSessionImageMainResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionImageMain404JSONResponse Error

func (response PostEditSessionImageMain404JSONResponse) VisitPostEditSessionImageMainResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionSaveRequestObject struct {
	SessionID SessionID `json:"sessionID"`
}

type PostEditSessionSaveResponseObject interface {
	VisitPostEditSessionSaveResponse(w http.ResponseWriter) error
}

type PostEditSessionSave200JSONResponse Project

func (response PostEditSessionSave200JSONResponse) VisitPostEditSessionSaveResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionSave404JSONResponse Error

func (response PostEditSessionSave404JSONResponse) VisitPostEditSessionSaveResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostImageRequestObject struct {
	Body io.Reader
}

type PostImageResponseObject interface {
	VisitPostImageResponse(w http.ResponseWriter) error
}

type PostImage201ResponseHeaders struct {
	Location string
}

type PostImage201JSONResponse struct {
	Body    UploadedImage
	Headers PostImage201ResponseHeaders
}

func (response PostImage201JSONResponse) VisitPostImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprint(response.Headers.Location))
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response.Body)
}

type PostImage400JSONResponse Error

func (response PostImage400JSONResponse) VisitPostImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PostImage429JSONResponse Error

func (response PostImage429JSONResponse) VisitPostImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(429)

	return json.NewEncoder(w).Encode(response)
}

type PostImage502JSONResponse Error

func (response PostImage502JSONResponse) VisitPostImageResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(502)

	return json.NewEncoder(w).Encode(response)
}

type PostProjectRequestObject struct {
	Body *PostProjectJSONRequestBody
}

type PostProjectResponseObject interface {
	VisitPostProjectResponse(w http.ResponseWriter) error
}

type PostProject201ResponseHeaders struct {
	Location string
}

type PostProject201JSONResponse struct {
	Body    Project
	Headers PostProject201ResponseHeaders
}

func (response PostProject201JSONResponse) VisitPostProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprint(response.Headers.Location))
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response.Body)
}

type PostProject400JSONResponse Error

func (response PostProject400JSONResponse) VisitPostProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type DeleteProjectRequestObject struct {
	ProjectID ProjectID `json:"projectID"`
}

type DeleteProjectResponseObject interface {
	VisitDeleteProjectResponse(w http.ResponseWriter) error
}

type DeleteProject204Response struct {
}

func (response DeleteProject204Response) VisitDeleteProjectResponse(w http.ResponseWriter) error {
	w.WriteHeader(204)
	return nil
}

type DeleteProject404JSONResponse Error

func (response DeleteProject404JSONResponse) VisitDeleteProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PutProjectRequestObject struct {
	ProjectID ProjectID `json:"projectID"`
	Body      *PutProjectJSONRequestBody
}

type PutProjectResponseObject interface {
	VisitPutProjectResponse(w http.ResponseWriter) error
}

type PutProject200JSONResponse Project

func (response PutProject200JSONResponse) VisitPutProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PutProject400JSONResponse Error

func (response PutProject400JSONResponse) VisitPutProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type PutProject404JSONResponse Error

func (response PutProject404JSONResponse) VisitPutProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type PostEditSessionRequestObject struct {
	ProjectID ProjectID `json:"projectID"`
}

type PostEditSessionResponseObject interface {
	VisitPostEditSessionResponse(w http.ResponseWriter) error
}

type PostEditSession201ResponseHeaders struct {
	Location string
}

type PostEditSession201JSONResponse struct {
	Body    EditSession
	Headers PostEditSession201ResponseHeaders
}

func (response PostEditSession201JSONResponse) VisitPostEditSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", fmt.Sprint(response.Headers.Location))
	w.WriteHeader(201)

	return json.NewEncoder(w).Encode(response.Body)
}

type PostEditSession404JSONResponse Error

func (response PostEditSession404JSONResponse) VisitPostEditSessionResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetAdminSettingsRequestObject struct {
}

type GetAdminSettingsResponseObject interface {
	VisitGetAdminSettingsResponse(w http.ResponseWriter) error
}

type GetAdminSettings200JSONResponse Settings

func (response GetAdminSettings200JSONResponse) VisitGetAdminSettingsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PutSettingsRequestObject struct {
	Body *PutSettingsJSONRequestBody
}

type PutSettingsResponseObject interface {
	VisitPutSettingsResponse(w http.ResponseWriter) error
}

type PutSettings200JSONResponse Settings

func (response PutSettings200JSONResponse) VisitPutSettingsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type PutSettings400JSONResponse Error

func (response PutSettings400JSONResponse) VisitPutSettingsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(400)

	return json.NewEncoder(w).Encode(response)
}

type GetProjectsRequestObject struct {
	Params GetProjectsParams
}

type GetProjectsResponseObject interface {
	VisitGetProjectsResponse(w http.ResponseWriter) error
}

type GetProjects200JSONResponse ProjectList

func (response GetProjects200JSONResponse) VisitGetProjectsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetProjectCategoriesRequestObject struct {
}

type GetProjectCategoriesResponseObject interface {
	VisitGetProjectCategoriesResponse(w http.ResponseWriter) error
}

type GetProjectCategories200JSONResponse Categories

func (response GetProjectCategories200JSONResponse) VisitGetProjectCategoriesResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetProjectRequestObject struct {
	ProjectID ProjectID `json:"projectID"`
}

type GetProjectResponseObject interface {
	VisitGetProjectResponse(w http.ResponseWriter) error
}

type GetProject200JSONResponse Project

func (response GetProject200JSONResponse) VisitGetProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetProject404JSONResponse Error

func (response GetProject404JSONResponse) VisitGetProjectResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(404)

	return json.NewEncoder(w).Encode(response)
}

type GetSettingsRequestObject struct {
}

type GetSettingsResponseObject interface {
	VisitGetSettingsResponse(w http.ResponseWriter) error
}

type GetSettings200JSONResponse Settings

func (response GetSettings200JSONResponse) VisitGetSettingsResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	return json.NewEncoder(w).Encode(response)
}

type GetHealthcheckRequestObject struct {
}

type GetHealthcheckResponseObject interface {
	VisitGetHealthcheckResponse(w http.ResponseWriter) error
}

type GetHealthcheck200TextResponse string

func (response GetHealthcheck200TextResponse) VisitGetHealthcheckResponse(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(200)

	_, err := w.Write([]byte(response))
	return err
}

// StrictServerInterface represents all server handlers.
type StrictServerInterface interface {
	// Get admin dashboard summary
	// (GET /api/admin/dashboard)
	GetDashboard(ctx context.Context, request GetDashboardRequestObject) (GetDashboardResponseObject, error)
	// Discard an edit session
	// (DELETE /api/admin/edit/{sessionID})
	DeleteEditSession(ctx context.Context, request DeleteEditSessionRequestObject) (DeleteEditSessionResponseObject, error)
	// Get the current state of an edit session
	// (GET /api/admin/edit/{sessionID})
	GetEditSession(ctx context.Context, request GetEditSessionRequestObject) (GetEditSessionResponseObject, error)
	// Upload images and append them to an edit session
	// (POST /api/admin/edit/{sessionID}/images)
	PostEditSessionImages(ctx context.Context, request PostEditSessionImagesRequestObject) (PostEditSessionImagesResponseObject, error)
	// Remove an image from an edit session
	// (DELETE /api/admin/edit/{sessionID}/images/{index})
	DeleteEditSessionImage(ctx context.Context, request DeleteEditSessionImageRequestObject) (DeleteEditSessionImageResponseObject, error)
	// Set an image as the main image of an edit session
	// (POST /api/admin/edit/{sessionID}/images/{index}/main)
	PostEditSessionImageMain(ctx context.Context, request PostEditSessionImageMainRequestObject) (PostEditSessionImageMainResponseObject, error)
	// Save an edit session back to the project
	// (POST /api/admin/edit/{sessionID}/save)
	PostEditSessionSave(ctx context.Context, request PostEditSessionSaveRequestObject) (PostEditSessionSaveResponseObject, error)
	// Upload a standalone image
	// (POST /api/admin/images)
	PostImage(ctx context.Context, request PostImageRequestObject) (PostImageResponseObject, error)
	// Add a new project
	// (POST /api/admin/projects)
	PostProject(ctx context.Context, request PostProjectRequestObject) (PostProjectResponseObject, error)
	// Delete a project
	// (DELETE /api/admin/projects/{projectID})
	DeleteProject(ctx context.Context, request DeleteProjectRequestObject) (DeleteProjectResponseObject, error)
	// Update a project
	// (PUT /api/admin/projects/{projectID})
	PutProject(ctx context.Context, request PutProjectRequestObject) (PutProjectResponseObject, error)
	// Open an edit session for project images
	// (POST /api/admin/projects/{projectID}/edit)
	PostEditSession(ctx context.Context, request PostEditSessionRequestObject) (PostEditSessionResponseObject, error)
	// Get site settings
	// (GET /api/admin/settings)
	GetAdminSettings(ctx context.Context, request GetAdminSettingsRequestObject) (GetAdminSettingsResponseObject, error)
	// Update site settings, keys not in the request are kept
	// (PUT /api/admin/settings)
	PutSettings(ctx context.Context, request PutSettingsRequestObject) (PutSettingsResponseObject, error)
	// List projects
	// (GET /api/projects)
	GetProjects(ctx context.Context, request GetProjectsRequestObject) (GetProjectsResponseObject, error)
	// List project categories
	// (GET /api/projects/categories)
	GetProjectCategories(ctx context.Context, request GetProjectCategoriesRequestObject) (GetProjectCategoriesResponseObject, error)
	// Get project details
	// (GET /api/projects/{projectID})
	GetProject(ctx context.Context, request GetProjectRequestObject) (GetProjectResponseObject, error)
	// Get site settings
	// (GET /api/settings)
	GetSettings(ctx context.Context, request GetSettingsRequestObject) (GetSettingsResponseObject, error)
	// Health check
	// (GET /healthcheck)
	GetHealthcheck(ctx context.Context, request GetHealthcheckRequestObject) (GetHealthcheckResponseObject, error)
}

type StrictHandlerFunc = strictgin.StrictGinHandlerFunc
type StrictMiddlewareFunc = strictgin.StrictGinMiddlewareFunc

func NewStrictHandler(ssi StrictServerInterface, middlewares []StrictMiddlewareFunc) ServerInterface {
	return &strictHandler{ssi: ssi, middlewares: middlewares}
}

type strictHandler struct {
	ssi         StrictServerInterface
	middlewares []StrictMiddlewareFunc
}

// GetDashboard operation middleware
func (sh *strictHandler) GetDashboard(ctx *gin.Context) {
	var request GetDashboardRequestObject

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetDashboard(ctx, request.(GetDashboardRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetDashboard")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetDashboardResponseObject); ok {
		if err := validResponse.VisitGetDashboardResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// DeleteEditSession operation middleware
func (sh *strictHandler) DeleteEditSession(ctx *gin.Context, sessionID SessionID) {
	var request DeleteEditSessionRequestObject

	request.SessionID = sessionID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteEditSession(ctx, request.(DeleteEditSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "DeleteEditSession")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(DeleteEditSessionResponseObject); ok {
		if err := validResponse.VisitDeleteEditSessionResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetEditSession operation middleware
func (sh *strictHandler) GetEditSession(ctx *gin.Context, sessionID SessionID) {
	var request GetEditSessionRequestObject

	request.SessionID = sessionID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetEditSession(ctx, request.(GetEditSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetEditSession")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetEditSessionResponseObject); ok {
		if err := validResponse.VisitGetEditSessionResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostEditSessionImages operation middleware
func (sh *strictHandler) PostEditSessionImages(ctx *gin.Context, sessionID SessionID) {
	var request PostEditSessionImagesRequestObject

	request.SessionID = sessionID

	if reader, err := ctx.Request.MultipartReader(); err == nil {
		request.Body = reader
	} else {
		ctx.Error(err)
		return
	}

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostEditSessionImages(ctx, request.(PostEditSessionImagesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostEditSessionImages")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostEditSessionImagesResponseObject); ok {
		if err := validResponse.VisitPostEditSessionImagesResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// DeleteEditSessionImage operation middleware
func (sh *strictHandler) DeleteEditSessionImage(ctx *gin.Context, sessionID SessionID, index ImageIndex) {
	var request DeleteEditSessionImageRequestObject

	request.SessionID = sessionID
	request.Index = index

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteEditSessionImage(ctx, request.(DeleteEditSessionImageRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "DeleteEditSessionImage")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(DeleteEditSessionImageResponseObject); ok {
		if err := validResponse.VisitDeleteEditSessionImageResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostEditSessionImageMain operation middleware
func (sh *strictHandler) PostEditSessionImageMain(ctx *gin.Context, sessionID SessionID, index ImageIndex) {
	var request PostEditSessionImageMainRequestObject

	request.SessionID = sessionID
	request.Index = index

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostEditSessionImageMain(ctx, request.(PostEditSessionImageMainRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostEditSessionImageMain")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostEditSessionImageMainResponseObject); ok {
		if err := validResponse.VisitPostEditSessionImageMainResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostEditSessionSave operation middleware
func (sh *strictHandler) PostEditSessionSave(ctx *gin.Context, sessionID SessionID) {
	var request PostEditSessionSaveRequestObject

	request.SessionID = sessionID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostEditSessionSave(ctx, request.(PostEditSessionSaveRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostEditSessionSave")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostEditSessionSaveResponseObject); ok {
		if err := validResponse.VisitPostEditSessionSaveResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostImage operation middleware
func (sh *strictHandler) PostImage(ctx *gin.Context) {
	var request PostImageRequestObject

	request.Body = ctx.Request.Body

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostImage(ctx, request.(PostImageRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostImage")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostImageResponseObject); ok {
		if err := validResponse.VisitPostImageResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostProject operation middleware
func (sh *strictHandler) PostProject(ctx *gin.Context) {
	var request PostProjectRequestObject

	var body PostProjectJSONRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.Status(http.StatusBadRequest)
		ctx.Error(err)
		return
	}
	request.Body = &body

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostProject(ctx, request.(PostProjectRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostProject")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostProjectResponseObject); ok {
		if err := validResponse.VisitPostProjectResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// DeleteProject operation middleware
func (sh *strictHandler) DeleteProject(ctx *gin.Context, projectID ProjectID) {
	var request DeleteProjectRequestObject

	request.ProjectID = projectID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.DeleteProject(ctx, request.(DeleteProjectRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "DeleteProject")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(DeleteProjectResponseObject); ok {
		if err := validResponse.VisitDeleteProjectResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PutProject operation middleware
func (sh *strictHandler) PutProject(ctx *gin.Context, projectID ProjectID) {
	var request PutProjectRequestObject

	request.ProjectID = projectID

	var body PutProjectJSONRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.Status(http.StatusBadRequest)
		ctx.Error(err)
		return
	}
	request.Body = &body

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PutProject(ctx, request.(PutProjectRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PutProject")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PutProjectResponseObject); ok {
		if err := validResponse.VisitPutProjectResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PostEditSession operation middleware
func (sh *strictHandler) PostEditSession(ctx *gin.Context, projectID ProjectID) {
	var request PostEditSessionRequestObject

	request.ProjectID = projectID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PostEditSession(ctx, request.(PostEditSessionRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PostEditSession")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PostEditSessionResponseObject); ok {
		if err := validResponse.VisitPostEditSessionResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetAdminSettings operation middleware
func (sh *strictHandler) GetAdminSettings(ctx *gin.Context) {
	var request GetAdminSettingsRequestObject

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetAdminSettings(ctx, request.(GetAdminSettingsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetAdminSettings")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetAdminSettingsResponseObject); ok {
		if err := validResponse.VisitGetAdminSettingsResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// PutSettings operation middleware
func (sh *strictHandler) PutSettings(ctx *gin.Context) {
	var request PutSettingsRequestObject

	var body PutSettingsJSONRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.Status(http.StatusBadRequest)
		ctx.Error(err)
		return
	}
	request.Body = &body

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.PutSettings(ctx, request.(PutSettingsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "PutSettings")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(PutSettingsResponseObject); ok {
		if err := validResponse.VisitPutSettingsResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetProjects operation middleware
func (sh *strictHandler) GetProjects(ctx *gin.Context, params GetProjectsParams) {
	var request GetProjectsRequestObject

	request.Params = params

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetProjects(ctx, request.(GetProjectsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetProjects")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetProjectsResponseObject); ok {
		if err := validResponse.VisitGetProjectsResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetProjectCategories operation middleware
func (sh *strictHandler) GetProjectCategories(ctx *gin.Context) {
	var request GetProjectCategoriesRequestObject

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetProjectCategories(ctx, request.(GetProjectCategoriesRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetProjectCategories")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetProjectCategoriesResponseObject); ok {
		if err := validResponse.VisitGetProjectCategoriesResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetProject operation middleware
func (sh *strictHandler) GetProject(ctx *gin.Context, projectID ProjectID) {
	var request GetProjectRequestObject

	request.ProjectID = projectID

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetProject(ctx, request.(GetProjectRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetProject")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetProjectResponseObject); ok {
		if err := validResponse.VisitGetProjectResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetSettings operation middleware
func (sh *strictHandler) GetSettings(ctx *gin.Context) {
	var request GetSettingsRequestObject

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetSettings(ctx, request.(GetSettingsRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetSettings")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetSettingsResponseObject); ok {
		if err := validResponse.VisitGetSettingsResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// GetHealthcheck operation middleware
func (sh *strictHandler) GetHealthcheck(ctx *gin.Context) {
	var request GetHealthcheckRequestObject

	handler := func(ctx *gin.Context, request interface{}) (interface{}, error) {
		return sh.ssi.GetHealthcheck(ctx, request.(GetHealthcheckRequestObject))
	}
	for _, middleware := range sh.middlewares {
		handler = middleware(handler, "GetHealthcheck")
	}

	response, err := handler(ctx, request)

	if err != nil {
		ctx.Error(err)
		ctx.Status(http.StatusInternalServerError)
	} else if validResponse, ok := response.(GetHealthcheckResponseObject); ok {
		if err := validResponse.VisitGetHealthcheckResponse(ctx.Writer); err != nil {
			ctx.Error(err)
		}
	} else if response != nil {
		ctx.Error(fmt.Errorf("unexpected response type: %T", response))
	}
}

// Base64 encoded, gzipped, json marshaled Swagger object
var swaggerSpec = []string{

	"H4sIAAAAAAAC/+xbX2/bOBL/KoTuHpU47XYPOAP3kGt3b3NoscFmi3soisNYHFvcSKSWHCXxBfnuhyH1",
	"15JtOXXSFOibLZHD4cxv/pGj+ygxeWE0anLR/D4qwEKOhNb/u8hhhRda4h3/UzqaRwVQGsWRhhyjeaT8",
	"uziy+GepLMpoTrbEOHJJijnwJFoXYSDhCm308BBHl9b8gQldvNtCtGje7yK8NDYHiuZRWSoZxfVCjqzS",
	"K7/OFTqnjN66jmveT9hAQ/ehfukl9BYIV8YqDNKzpkBL1b+k904R5m6EYMM5WAtrz3jLzKcukc/NULNg",
	"AfHcd+DShQErh8tDQuoGf5KKKkG4MX3EG2yClIqU0ZBd9qgN5w14WSJQaVFW+nU9LSlNf3vTqqlDx2KC",
	"mrqTGlH91eIymkd/mbUgnVXCn1UThgKMIzLk2T+Ei7LIDEj3Hhy9g/WkSRua6q86Io6eqAcrxmMKG0hn",
	"DAOdGUMUKDbhgwAYRzko7U2fR+syy2CRYW0Zg9m1ucoJVhk3RidHOQkyQf9SokusKshvK7giJ6AoUEuU",
	"YrEWlConWAPoKBZKizBbGCvRRvHUDcfR3cnKnPCzE3etihNTBAM4KQzr2oadb6q73UhXBF3hxbXwR5Vm",
	"rbFDdeXoXCX4oUPrLl8PHKNdm8Y2j7QeFUpiEQjlOfX0KIHwhFSOY8qUmJuPNhsl11PfpjavQCtS/0Mp",
	"fvn9w/sx0rX1dGgvjMkQNL9V08D2xeDvc32e3cLaCUpRLJV1JFCTXQuzFGGhWLCxiNsUNQ+yKMCi0KZ6",
	"zZFnnzFZLLZKlDBJtcnMSh26J1KU4RaDk4cpfQOGQe6efF/lcQu2Dc5b2LTb7eh71IK66OwyvQP9F7oo",
	"DzKBiX6Ahxko1EliJK5Qn+AdWTghWHn6C6UlU5tHOdz949XZmRfZVkM59qImZ1QUtI5Lm1VL9+zwUcvv",
	"tsfpRNS4Xb3HFSRr4ZReZRiMJRZGZ2tROpTBnrz+lV4JEJW3nWJOrQMYiSYiUxw49i50Kj5AxraBUtxA",
	"VnIYsigoIFKAE6CFF7qneNoVSDSP/nBGn/4Gtx8qj90Vl8oLYwNKOTWdR6gTw6qc8SzewVTRbnUcT4+w",
	"R/ql6Xvb4r4ms1w7rJhN8vWPP4Ysvpe7+RV2eJP3yo05E1NqGs+OGyF8WTK7WQ34BWvqY/xeITF6p+Ty",
	"A720VD5WeVgTCPv7Lkcj1AavPGjIoU8Bk9IqWl/x5gPBBYJFe16yDdT/fq6j0b//8/tGcJlH50mCzgky",
	"16iFcq6sU0IUeEdoNWRCSdSkaM12fKMk2lhA5oyAJMGCLXdpTe6ngKf230AtMeZasZl65XhH5/lpY2FK",
	"VAQMKb00Q+9yaSwtTaaMSIAgMyvh0N6oBMWtopS9BchcafYiIJbG1o6GHYlkhpQNXlCsIMuQ64XTJszO",
	"o5+ZdBRHN2hDzh+9Oj07PWO9mQI1FCqaRz+cnp3+wKkpUOpFPINCzfy6M9ktGlfoEczqBaoy8+hfSG1l",
	"yWp1hdEu6Or12VnAviYM6IeiyFTiZwe/Nb/vFNC7cN8u8jCIVW1tK1yZ52DXPfRE80993Hz6/PA5juqh",
	"fg+VnOWAUBwFL/Ep8iOiz0y5IyGUimb3zQHBQ9BxhoRDWb3zz7tFWNw7Rvk0LoJ2yKw9qOAdbAj7zRBf",
	"vJaomBNSuQQs10wPcfQmDD+KbkKFMqKX3vLakFiaUsvDlPMucO0jZ4fciGLirQh9MpEfD99dFvdI8ptS",
	"H9sWO86ktBY1CUdAyIXQfn3uNrRZm7EVJoTcDe5v0K7FUnGi6ESSYnLNrh+XhsstvRZkQbslWubJkjsV",
	"F0thNLbPl6AyxxtPOctT7ZkC+9g+yC6N66Lsoi5Gvgxr/sDin0auN3SdlxmpAizNONk8kUDQV3c/CLMM",
	"+hlGU78tlK683N6zxs3w/LB5FvrwMswjhE7GXH1GVFXVjfqCAZ09vQGdB/jdghMWWWwvwPfG0ZvXf3/6",
	"5UNeKCxbe6ZyRcIiJGkQwI9nr5+eg189UIUjYzlBYmPGA51XtYkaPlpWEGJ05YLMsZzY7N5fjxyWPNQH",
	"H492MfHewZ1bnZcV/J7Bdv22hSmJg5UFvcJvKu7+hrm54ThX1Qe+gjkyXGc5KN0NwPtj4gee8R2z3zE7",
	"htkrrsNqwEI4PmeIVU+OkTQ6uMHJiL3iwS+0XmjOgYaqYLZlc/b5VQDQnlQ8GgsQvFdX3WIByTWHXQZG",
	"e7a7GwLDMmGo8zqUbs+4uwIzCSGdOLIIeV9we9PqKUnzq6Ppqn82N+YvvF1xhuSvU1IEWfVzvDdhRf59",
	"QMfDszk6z3gvp/6e1B6W1AKXvVpCxiWvqgxgtykVnUaJ7cZ02RjmNHN6lN8Ld3bPbE87fG71SlSXj9+W",
	"MekbyFQnYhyCpnPJUNJ4O9kh1yia3TftWxMKnxZVh4XjtoVs2olprcjAzfOV65dfFi6DkHpXnsPj0eqa",
	"e7xdxqK4xoJiDq5rkYAO150LFEnKmSQXvdaUq3QzKo8chpV0LHW9BAfyLEnbx9Cp0E/bvobxfxt4D+La",
	"iff9XseXB5OrgeO6nldf5WjUFKiPGZ1ePlB+LVAP6ojOTWrbcbUbP65zW77tmumcRzbX6k/oR5o1xs6c",
	"s0y49v2BVzVOEbbTdwSRgcfv7fv4bru/5edz2VNFLWBJaKtrB/ZNz+7BH6f0ypH29B6La1z7iy+hfH9i",
	"3TvbZAk7zKVbJGwzlE6j84ZL7W/tLTgUSjvUTpG64bXXt8ZKkQNx2SVgBUo7Er7hIRad2YLwjpOZTseR",
	"P8Dv9Br6Rv8/S/R/mk5/sEka7fJ88ZDLuldbkBFKJ1kpMRYWi9D2ZaxITJ6DcMi7DeUB3hWZkU0/2hgv",
	"HVZbbqa3cjpa+yaQpbH5s5xF+c6nEYB+YGUpvWqaV2JR9whW3bGUouYagiHmnwQMNyBlys3sDvaKcpGp",
	"ZAR8s/6nCntw+LbbbP9kUuqsMtbCohwpzRVkiyalBWRFCgsklUBWtatvF43ofTWwX0gbBdgeKR03/zl7",
	"xqr8aye1vQhbNAUmgcp2KmpKzvHy0o1J+URvrylCRqnv0Ni11V86w/bult3/rMiqC6qdH2ltnJ5XDXjK",
	"ibLY2FHgIPSSVB94ob2pzcH3OkYzj/Zqn4PvArTR69yUrun3Qy19E6vrfNUWZDMMND/VYwWlQKJKgjpd",
	"gp1Wx5ZcCNAPnx/+HwAA//8pLD+8wjcAAA==",
}

// GetSwagger returns the content of the embedded swagger specification file
// or error if failed to decode
func decodeSpec() ([]byte, error) {
	zipped, err := base64.StdEncoding.DecodeString(strings.Join(swaggerSpec, ""))
	if err != nil {
		return nil, fmt.Errorf("error base64 decoding spec: %w", err)
	}
	zr, err := gzip.NewReader(bytes.NewReader(zipped))
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}
	var buf bytes.Buffer
	_, err = buf.ReadFrom(zr)
	if err != nil {
		return nil, fmt.Errorf("error decompressing spec: %w", err)
	}

	return buf.Bytes(), nil
}

var rawSpec = decodeSpecCached()

// a naive cached of a decoded swagger spec
func decodeSpecCached() func() ([]byte, error) {
	data, err := decodeSpec()
	return func() ([]byte, error) {
		return data, err
	}
}

// Constructs a synthetic filesystem for resolving external references when loading openapi specifications.
func PathToRawSpec(pathToFile string) map[string]func() ([]byte, error) {
	res := make(map[string]func() ([]byte, error))
	if len(pathToFile) > 0 {
		res[pathToFile] = rawSpec
	}

	return res
}

// GetSwagger returns the Swagger specification corresponding to the generated code
// in this file. The external references of Swagger specification are resolved.
// The logic of resolving external references is tightly connected to "import-mapping" feature.
// Externally referenced files must be embedded in the corresponding golang packages.
// Urls can be supported but this task was out of the scope.
func GetSwagger() (swagger *openapi3.T, err error) {
	resolvePath := PathToRawSpec("")

	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true
	loader.ReadFromURIFunc = func(loader *openapi3.Loader, url *url.URL) ([]byte, error) {
		pathToFile := url.String()
		pathToFile = path.Clean(pathToFile)
		getSpec, ok := resolvePath[pathToFile]
		if !ok {
			err1 := fmt.Errorf("path not found: %s", pathToFile)
			return nil, err1
		}
		return getSpec()
	}
	var specData []byte
	specData, err = rawSpec()
	if err != nil {
		return
	}
	swagger, err = loader.LoadFromData(specData)
	if err != nil {
		return
	}
	return
}
