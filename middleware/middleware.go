package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/farbarter/goapi/base/codec"
	"github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/delivery"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	met metrics.Service
}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{
		met: metrics.New("http"),
	}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		return next(c)
	}
}

// AddContext puts a ctx.Ctx carrying the request id under "ctx". It is not
// derived from the request, work started with it survives a client hang-up.
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			cont := ctx.WithValue(ctx.Background(), "requestID", requestID)
			cont.Logger = cont.WithField("requestID", requestID)
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer m.met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}
			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger := log.Log()
			if cont, ok := c.Get("ctx").(ctx.Ctx); ok {
				logger = cont.Logger
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}

// IsValidListingId rejects requests whose param is not a listing id.
func IsValidListingId(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			if _, err := codec.ValidateIdentifier(c.Param(param)); err != nil {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
			}
			return next(c)
		}
	}
}
