package server

import (
	"fitcircle/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupSwagger serves the API docs under /swagger. The bearer token entered in
// the UI survives page reloads.
func SetupSwagger(r *gin.Engine) {
	handler := ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		ginSwagger.PersistAuthorization(true),
		ginSwagger.DefaultModelsExpandDepth(1),
	)
	r.GET("/swagger/*any", handler)
}
