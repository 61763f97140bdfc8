package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirehub/internal/application"
	"github.com/ecodeclub/hirehub/internal/company"
	"github.com/ecodeclub/hirehub/internal/job"
	"github.com/ecodeclub/hirehub/internal/notification"
	"github.com/ecodeclub/hirehub/internal/pkg/middleware"
	"github.com/ecodeclub/hirehub/internal/profile"
	"github.com/ecodeclub/hirehub/internal/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	appHdl *application.Handler,
	reviewerHdl *application.ReviewerHandler,
	employerHdl *application.EmployerHandler,
	profileHdl *profile.Handler,
	jobHdl *job.Handler,
	companyHdl *company.Handler,
	searchHdl *search.Handler,
	notiHdl *notification.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "hirehub.cn")
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	jobHdl.PublicRoutes(res.Engine)
	companyHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	profileHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	reviewerHdl.PrivateRoutes(res.Engine)
	employerHdl.PrivateRoutes(res.Engine)
	notiHdl.PrivateRoutes(res.Engine)
	return res
}
