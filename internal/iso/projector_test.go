package iso

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		gridX, gridY     int
		originX, originY int
		screenX, screenY int
	}{
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 32, 16},
		{0, 1, 0, 0, -32, 16},
		{1, 1, 0, 0, 0, 32},
		{2, 3, 0, 0, -32, 80},
		{0, 0, 100, 50, 100, 50},
		{1, 0, 100, 50, 132, 66},
	}

	for _, tt := range tests {
		sx, sy := Project(tt.gridX, tt.gridY, tt.originX, tt.originY)
		if sx != tt.screenX || sy != tt.screenY {
			t.Errorf("Project(%d,%d,%d,%d) = (%d,%d), want (%d,%d)",
				tt.gridX, tt.gridY, tt.originX, tt.originY, sx, sy, tt.screenX, tt.screenY)
		}
	}
}

func TestUnprojectInvertsProject(t *testing.T) {
	origins := []struct{ x, y int }{{0, 0}, {256, 64}, {-100, 30}}

	for _, o := range origins {
		for gy := 0; gy < 8; gy++ {
			for gx := 0; gx < 8; gx++ {
				sx, sy := Project(gx, gy, o.x, o.y)
				bx, by := Unproject(sx, sy, o.x, o.y)
				if bx != gx || by != gy {
					t.Errorf("Unproject(Project(%d,%d)) = (%d,%d) with origin (%d,%d)",
						gx, gy, bx, by, o.x, o.y)
				}
			}
		}
	}
}
