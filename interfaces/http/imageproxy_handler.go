package http

import (
	"net/http"
	"net/url"
	"strings"

	"axlas-recipes/infrastructure/logger"

	"github.com/gin-gonic/gin"
)

// Thumbnail CDNs the proxy will fetch from. Anything else is refused so the
// endpoint cannot be used as an open relay.
var allowedImageHostSuffixes = []string{
	".tiktokcdn.com",
	".tiktokcdn-us.com",
	".tiktokcdn-eu.com",
	"cdn.sanity.io",
}

const imageProxyCacheControl = "public, max-age=300, s-maxage=600, stale-while-revalidate=86400"

type IImageProxyHandler interface {
	Proxy(c *gin.Context)
}

// ImageProxyHandler fetches remote thumbnails server-side. The upstream CDNs
// refuse hot-linked browser requests, so the frontend goes through here.
type ImageProxyHandler struct {
	httpClient *http.Client
	extraHosts []string
}

func NewImageProxyHandler(httpClient *http.Client, extraHosts []string) IImageProxyHandler {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ImageProxyHandler{
		httpClient: httpClient,
		extraHosts: extraHosts,
	}
}

func (imageProxyHandler *ImageProxyHandler) hostAllowed(host string) bool {
	for _, suffix := range allowedImageHostSuffixes {
		if strings.HasSuffix(host, suffix) {
			return true
		}
	}
	for _, extra := range imageProxyHandler.extraHosts {
		if host == extra {
			return true
		}
	}
	return false
}

func (imageProxyHandler *ImageProxyHandler) Proxy(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url"})
		return
	}

	target, err := url.Parse(rawURL)
	if err != nil || target.Scheme != "https" || target.Host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid url"})
		return
	}
	if !imageProxyHandler.hostAllowed(target.Host) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Host not allowed"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, target.String(), nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
		return
	}
	res, err := imageProxyHandler.httpClient.Do(req)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Image proxy upstream fetch failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
		return
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream fetch failed"})
		return
	}

	c.Header("Cache-Control", imageProxyCacheControl)
	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	c.DataFromReader(http.StatusOK, res.ContentLength, contentType, res.Body, nil)
}
