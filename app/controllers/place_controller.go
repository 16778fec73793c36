package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/map-api/app/models"
	"github.com/map-api/app/requests"
	"github.com/map-api/app/responses"
	"github.com/map-api/app/services"
	"github.com/map-api/helpers/utils"
	"go.uber.org/zap"
)

const geocodingChain = "vworld+nominatim"

// PlaceController handles every place/geocoding request.
type PlaceController struct {
	placeService   *services.PlaceService
	geocodeService *services.GeocodeService
	logger         *zap.Logger
}

// NewPlaceController creates a PlaceController.
func NewPlaceController(placeService *services.PlaceService, geocodeService *services.GeocodeService, logger *zap.Logger) *PlaceController {
	return &PlaceController{
		placeService:   placeService,
		geocodeService: geocodeService,
		logger:         logger,
	}
}

// HealthCheck reports liveness and the geocoder chain.
func (pc *PlaceController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "ok",
		Service:   "map-api",
		Timestamp: time.Now().Format(time.RFC3339),
		Geocoding: geocodingChain,
	})
}

// ChatPlaces receives the chatbot's place list, geocodes it, and returns the
// resolved subset. Partial failure is still HTTP 200: the envelope flips to
// success:false and reports failed_count, but the resolved places are kept.
func (pc *PlaceController) ChatPlaces(c *gin.Context) {
	var req requests.ChatPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error: "상호목록이 올바르지 않습니다.",
		})
		return
	}

	batch := pc.placeService.ResolveAll(c.Request.Context(), req.Places, services.SourceChatbot)

	if batch.FailedCount > 0 {
		c.JSON(http.StatusOK, responses.PartialPlacesResponse{
			Success:     false,
			Error:       fmt.Sprintf("%d개 장소의 좌표를 찾지 못했습니다.", batch.FailedCount),
			Places:      batch.Places,
			Count:       batch.SuccessCount,
			FailedCount: batch.FailedCount,
			Source:      services.SourceChatbot,
		})
		return
	}

	c.JSON(http.StatusOK, responses.PlacesResponse{
		Success: true,
		Places:  batch.Places,
		Count:   batch.SuccessCount,
		Source:  services.SourceChatbot,
		GeocodingInfo: &responses.GeocodingInfo{
			Provider: "vworld",
			Fallback: "nominatim",
		},
	})
}

// ReceivePlaces receives the external backend's place list, posted as a bare
// array rather than a wrapped object.
func (pc *PlaceController) ReceivePlaces(c *gin.Context) {
	var places []models.PlaceInput
	if err := c.ShouldBindJSON(&places); err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error: "장소 데이터 처리 중 오류가 발생했습니다.",
		})
		return
	}

	pc.logger.Info("Received places from backend", zap.Int("count", len(places)))

	batch := pc.placeService.ResolveAll(c.Request.Context(), places, services.SourcePython)

	if batch.FailedCount > 0 {
		c.JSON(http.StatusOK, responses.PartialPlacesResponse{
			Success:     false,
			Error:       fmt.Sprintf("%d개 장소의 좌표를 찾지 못했습니다.", batch.FailedCount),
			Places:      batch.Places,
			Count:       batch.SuccessCount,
			FailedCount: batch.FailedCount,
			Source:      services.SourcePython,
		})
		return
	}

	c.JSON(http.StatusOK, responses.PlacesResponse{
		Success: true,
		Places:  batch.Places,
		Count:   batch.SuccessCount,
		Source:  services.SourcePython,
	})
}

// Geocode resolves a single address. A not-found outcome is HTTP 200 with
// success:false and null coordinates, not an HTTP error.
func (pc *PlaceController) Geocode(c *gin.Context) {
	var req requests.GeocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error: "주소가 필요합니다.",
		})
		return
	}

	result, err := pc.geocodeService.Resolve(c.Request.Context(), req.Address)
	if err != nil {
		c.JSON(http.StatusOK, responses.GeocodeResponse{
			Success:     false,
			Error:       "좌표를 찾을 수 없습니다.",
			Coordinates: nil,
		})
		return
	}

	coords := models.Coordinates{Lat: result.Lat, Lng: result.Lng}
	c.JSON(http.StatusOK, responses.GeocodeResponse{
		Success:          true,
		Coordinates:      &coords,
		Address:          req.Address,
		FormattedAddress: result.FormattedAddress,
		GoogleMapsURL:    utils.GoogleMapsURL("검색 위치", req.Address, &coords),
	})
}

// SearchPlaces serves the standalone map search box. Real search is not
// implemented; this returns representative mock entries.
func (pc *PlaceController) SearchPlaces(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error: "검색 키워드가 필요합니다.",
		})
		return
	}
	location := c.Query("location")

	places := mockSearchPlaces(keyword, location)

	c.JSON(http.StatusOK, responses.SearchPlacesResponse{
		Success:        true,
		Places:         places,
		Count:          len(places),
		Keyword:        keyword,
		SearchLocation: location,
		Source:         "search",
		Note:           "Mock data - 실제 검색 기능은 추후 구현",
	})
}

// PlaceDetail returns detail for one place id. Backed by mock data until a
// place store exists.
func (pc *PlaceController) PlaceDetail(c *gin.Context) {
	id := c.Param("id")

	coords := models.Coordinates{Lat: 37.5665, Lng: 126.978}
	phone := "02-1234-5678"
	rating := 4.3
	openHours := "10:00 - 22:00"

	c.JSON(http.StatusOK, responses.PlaceDetailResponse{
		Success: true,
		Place: models.PlaceOutput{
			ID:          id,
			Name:        "상세 정보 테스트",
			Address:     "서울특별시 강남구 테헤란로 427",
			Coordinates: coords,
			Category:    "음식점",
			Info: models.PlaceInfo{
				Phone:       &phone,
				Rating:      &rating,
				OpenHours:   &openHours,
				Description: "맛있는 음식을 제공하는 레스토랑입니다.",
				Features:    []string{"WiFi", "주차가능", "포장가능", "배달가능"},
			},
			GoogleMapsURL: utils.GoogleMapsURL("상세 정보 테스트", "서울특별시 강남구 테헤란로 427", &coords),
			PinOptions:    models.PinOptions{Color: "#FF6B6B", Icon: "restaurant"},
		},
	})
}

func mockSearchPlaces(keyword, location string) []models.PlaceOutput {
	category := "음식점"
	if containsCafe(keyword) {
		category = "카페"
	}
	if location == "" {
		location = "서울"
	}

	entries := []struct {
		branch    string
		address   string
		coords    models.Coordinates
		phone     string
		rating    float64
		openHours string
		desc      string
		features  []string
	}{
		{
			branch:    keyword + " 1호점",
			address:   "서울특별시 강남구 테헤란로 427",
			coords:    models.Coordinates{Lat: 37.5665, Lng: 126.978},
			phone:     "02-1234-5678",
			rating:    4.2,
			openHours: "09:00 - 22:00",
			desc:      fmt.Sprintf("맛있는 %s를 제공하는 곳입니다.", keyword),
			features:  []string{"WiFi", "주차가능", "포장가능"},
		},
		{
			branch:    keyword + " 2호점",
			address:   "서울특별시 서초구 서초대로 398",
			coords:    models.Coordinates{Lat: 37.5645, Lng: 126.9751},
			phone:     "02-8765-4321",
			rating:    4.5,
			openHours: "08:00 - 23:00",
			desc:      fmt.Sprintf("분위기 좋은 %s 전문점입니다.", keyword),
			features:  []string{"24시간", "WiFi", "배달가능"},
		},
	}

	places := make([]models.PlaceOutput, 0, len(entries))
	for i, e := range entries {
		e := e
		places = append(places, models.PlaceOutput{
			ID:          fmt.Sprintf("search-%d", i+1),
			Name:        e.branch,
			Location:    location,
			Address:     e.address,
			Coordinates: e.coords,
			Category:    category,
			Info: models.PlaceInfo{
				Phone:       &e.phone,
				Rating:      &e.rating,
				OpenHours:   &e.openHours,
				Description: e.desc,
				Features:    e.features,
			},
			GoogleMapsURL: utils.GoogleMapsURL(e.branch, e.address, &e.coords),
			PinOptions:    pinForKeywordCategory(category),
		})
	}
	return places
}

func containsCafe(keyword string) bool {
	return strings.Contains(keyword, "카페")
}

func pinForKeywordCategory(category string) models.PinOptions {
	if category == "카페" {
		return models.PinOptions{Color: "#4ECDC4", Icon: "local_cafe"}
	}
	return models.PinOptions{Color: "#FF6B6B", Icon: "restaurant"}
}
