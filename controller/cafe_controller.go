package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cafedir/model"
	"cafedir/repository"
)

// CafeController owns the cafe-directory routes. The repository and the
// delete-authorization secret are injected at construction so nothing in
// this package reaches for globals.
type CafeController struct {
	cafes     *repository.CafeRepo
	deleteKey string
}

func NewCafeController(cafes *repository.CafeRepo, deleteKey string) *CafeController {
	return &CafeController{cafes: cafes, deleteKey: deleteKey}
}

func (ctrl *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// RandomCafe picks one row uniformly at random. The upstream behavior on an
// empty table was an unhandled 500; here it is a structured 404.
func (ctrl *CafeController) RandomCafe(c *gin.Context) {
	cafe, err := ctrl.cafes.Random()
	if err != nil {
		if errors.Is(err, repository.ErrEmptyTable) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"Not Found": "There are no cafes in the database yet."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafe": cafe.ToMap()})
}

func (ctrl *CafeController) AllCafes(c *gin.Context) {
	cafes, err := ctrl.cafes.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cafes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes_info": cafeMaps(cafes)})
}

// SearchByLocation matches the location exactly, case-sensitive. An empty
// match set is a 200 with a structured not-found map, not an HTTP error.
func (ctrl *CafeController) SearchByLocation(c *gin.Context) {
	loc := c.Query("loc")
	cafes, err := ctrl.cafes.FilterByLocation(loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cafes"})
		return
	}

	if len(cafes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"error": gin.H{
				"No results of that area found": "Error Not Found",
				"Know a good one?":              "Please send details!",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": cafeMaps(cafes)})
}

// SearchByWifi returns cafes at the given location that have wifi. The
// upstream version evaluated the two conditions incorrectly and matched on
// neither; the conjunction here is the intended contract.
func (ctrl *CafeController) SearchByWifi(c *gin.Context) {
	loc := c.Query("loc")
	cafes, err := ctrl.cafes.FilterByLocationWithWifi(loc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search cafes"})
		return
	}

	if len(cafes) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"Error": gin.H{"No cafes with WiFi found": "Error no Wifi in database"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cafes": cafeMaps(cafes)})
}

// AddCafe creates a new cafe from form fields. The amenity flags accept
// only explicit boolean tokens; an absent flag means false and anything
// unparsable is a 400. "Present and non-empty means true" is gone.
func (ctrl *CafeController) AddCafe(c *gin.Context) {
	type Request struct {
		Name         string `form:"name" binding:"required"`
		MapURL       string `form:"map_url" binding:"required"`
		ImgURL       string `form:"img_url" binding:"required"`
		Location     string `form:"loc" binding:"required"`
		Seats        string `form:"seats" binding:"required"`
		HasSockets   bool   `form:"sockets"`
		HasToilet    bool   `form:"toilet"`
		HasWifi      bool   `form:"wifi"`
		CanTakeCalls bool   `form:"calls"`
		CoffeePrice  string `form:"coffee_price"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"Bad Request": "name, map_url, img_url, loc and seats are required; amenity flags must be true or false"},
		})
		return
	}

	cafe := model.Cafe{
		Name:         req.Name,
		MapURL:       req.MapURL,
		ImgURL:       req.ImgURL,
		Location:     req.Location,
		Seats:        req.Seats,
		HasSockets:   req.HasSockets,
		HasToilet:    req.HasToilet,
		HasWifi:      req.HasWifi,
		CanTakeCalls: req.CanTakeCalls,
		CoffeePrice:  req.CoffeePrice,
	}

	if err := ctrl.cafes.Create(&cafe); err != nil {
		if errors.Is(err, repository.ErrNameExists) {
			c.JSON(http.StatusConflict, gin.H{
				"error": gin.H{"Conflict": "A cafe with that name is already in the database."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add the cafe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully added the new cafe."},
	})
}

// UpdatePrice changes only the coffee_price field of one cafe.
func (ctrl *CafeController) UpdatePrice(c *gin.Context) {
	id, ok := parseCafeID(c)
	if !ok {
		return
	}

	newPrice := c.Query("new_price")
	if err := ctrl.cafes.UpdatePrice(id, newPrice); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"Not Found": "Sorry a cafe with that id was not found in the database."},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update the price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "Successfully updated the price."},
	})
}

// ReportClosed deletes a cafe if the caller presents the shared secret.
// A valid key with an unknown id is an explicit 404; the upstream handler
// fell through without responding in that case.
func (ctrl *CafeController) ReportClosed(c *gin.Context) {
	if c.Query("secret_key") != ctrl.deleteKey {
		c.JSON(http.StatusForbidden, gin.H{
			"error": gin.H{"Unauthorized": "please check the secret key you used"},
		})
		return
	}

	id, ok := parseCafeID(c)
	if !ok {
		return
	}

	if err := ctrl.cafes.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": gin.H{"Not Found": "The cafe was not found, please check the id"},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete the cafe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{"success": "The cafe has been removed from the database."},
	})
}

func parseCafeID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"Bad Request": "Invalid cafe ID format"},
		})
		return 0, false
	}
	return uint(id), true
}

func cafeMaps(cafes []model.Cafe) []map[string]interface{} {
	maps := make([]map[string]interface{}, len(cafes))
	for i := range cafes {
		maps[i] = cafes[i].ToMap()
	}
	return maps
}
