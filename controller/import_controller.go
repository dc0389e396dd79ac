package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"cafedir/model"
	"cafedir/repository"
)

// Excel import sheet layout: header row, then one cafe per row in the
// column order name, map_url, img_url, location, seats, has_toilet,
// has_wifi, has_sockets, can_take_calls, coffee_price.
const importSheet = "Sheet1"

// BulkAddCafes imports cafes from an uploaded Excel workbook. Rows with
// missing required cells, bad boolean tokens or duplicate names are
// skipped; the response reports how many rows went each way.
func (ctrl *CafeController) BulkAddCafes(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows(importSheet)
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
		return
	}

	inserted := 0
	skipped := 0
	for _, row := range rows[1:] {
		cafe, ok := cafeFromRow(row)
		if !ok {
			skipped++
			continue
		}

		if err := ctrl.cafes.Create(cafe); err != nil {
			if errors.Is(err, repository.ErrNameExists) {
				skipped++
				continue
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import cafes"})
			return
		}
		inserted++
	}

	c.JSON(http.StatusOK, gin.H{
		"response": gin.H{
			"success":  "Import finished.",
			"inserted": inserted,
			"skipped":  skipped,
		},
	})
}

func cafeFromRow(row []string) (*model.Cafe, bool) {
	if len(row) < 9 {
		return nil, false
	}

	cafe := model.Cafe{
		Name:     row[0],
		MapURL:   row[1],
		ImgURL:   row[2],
		Location: row[3],
		Seats:    row[4],
	}
	if cafe.Name == "" || cafe.MapURL == "" || cafe.ImgURL == "" || cafe.Location == "" || cafe.Seats == "" {
		return nil, false
	}

	flags := []*bool{&cafe.HasToilet, &cafe.HasWifi, &cafe.HasSockets, &cafe.CanTakeCalls}
	for i, flag := range flags {
		cell := row[5+i]
		if cell == "" {
			continue
		}
		value, err := strconv.ParseBool(cell)
		if err != nil {
			return nil, false
		}
		*flag = value
	}

	if len(row) > 9 {
		cafe.CoffeePrice = row[9]
	}
	return &cafe, true
}
