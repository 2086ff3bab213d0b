package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /pool)
	GetPool(c *gin.Context)
	// (POST /pool/workers)
	AddWorker(c *gin.Context)
	// (DELETE /pool/workers)
	RemoveWorker(c *gin.Context)
	// (POST /pool/resize)
	ResizePool(c *gin.Context)
	// (POST /jobs)
	SubmitJob(c *gin.Context)
	// (GET /events)
	GetEvents(c *gin.Context, params GetEventsParams)
	// (GET /events/{id})
	GetEvent(c *gin.Context, id int64)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) GetPool(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.GetPool(c)
	}
}

func (siw *ServerInterfaceWrapper) AddWorker(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.AddWorker(c)
	}
}

func (siw *ServerInterfaceWrapper) RemoveWorker(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.RemoveWorker(c)
	}
}

func (siw *ServerInterfaceWrapper) ResizePool(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.ResizePool(c)
	}
}

func (siw *ServerInterfaceWrapper) SubmitJob(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.SubmitJob(c)
	}
}

func (siw *ServerInterfaceWrapper) GetEvents(c *gin.Context) {
	var err error
	var params GetEventsParams

	err = runtime.BindQueryParameter("form", true, false, "type", c.Request.URL.Query(), &params.Type)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter type: %w", err), http.StatusBadRequest)
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "worker", c.Request.URL.Query(), &params.Worker)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter worker: %w", err), http.StatusBadRequest)
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", c.Request.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter limit: %w", err), http.StatusBadRequest)
		return
	}

	err = runtime.BindQueryParameter("form", true, false, "offset", c.Request.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter offset: %w", err), http.StatusBadRequest)
		return
	}

	if siw.runMiddlewares(c) {
		siw.Handler.GetEvents(c, params)
	}
}

func (siw *ServerInterfaceWrapper) GetEvent(c *gin.Context) {
	var id int64

	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("invalid format for parameter id: %w", err), http.StatusBadRequest)
		return
	}

	if siw.runMiddlewares(c) {
		siw.Handler.GetEvent(c, id)
	}
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching the API.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options.
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, Error{Error: err.Error()})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	router.GET(options.BaseURL+"/pool", wrapper.GetPool)
	router.POST(options.BaseURL+"/pool/workers", wrapper.AddWorker)
	router.DELETE(options.BaseURL+"/pool/workers", wrapper.RemoveWorker)
	router.POST(options.BaseURL+"/pool/resize", wrapper.ResizePool)
	router.POST(options.BaseURL+"/jobs", wrapper.SubmitJob)
	router.GET(options.BaseURL+"/events", wrapper.GetEvents)
	router.GET(options.BaseURL+"/events/:id", wrapper.GetEvent)
}
