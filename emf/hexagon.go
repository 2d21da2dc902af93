package emf

// hexagonVertices returns the six vertices of a zint hexagon marker in
// drawing order, flat-top for rotation 0/180 and pointy-top for 60/120,
// along with their bounding box.
func hexagonVertices(x, y, diameter float64, rotation int) (pts [6]point32, bounds rect32) {
	radius := diameter / 2.0

	var ax, ay, bx, by, cx, cy, dx, dy, ex, ey, fx, fy float64
	if rotation == 0 || rotation == 180 {
		ay = y + 1.0*radius
		by = y + 0.5*radius
		cy = y - 0.5*radius
		dy = y - 1.0*radius
		ey = y - 0.5*radius
		fy = y + 0.5*radius
		ax = x
		bx = x + 0.86*radius
		cx = x + 0.86*radius
		dx = x
		ex = x - 0.86*radius
		fx = x - 0.86*radius
	} else {
		ay = y
		by = y + 0.86*radius
		cy = y + 0.86*radius
		dy = y
		ey = y - 0.86*radius
		fy = y - 0.86*radius
		ax = x - 1.0*radius
		bx = x - 0.5*radius
		cx = x + 0.5*radius
		dx = x + 1.0*radius
		ex = x + 0.5*radius
		fx = x - 0.5*radius
	}

	pts = [6]point32{
		{int32(ax), int32(ay)},
		{int32(bx), int32(by)},
		{int32(cx), int32(cy)},
		{int32(dx), int32(dy)},
		{int32(ex), int32(ey)},
		{int32(fx), int32(fy)},
	}

	bounds = rect32{Left: pts[0].X, Top: pts[0].Y, Right: pts[0].X, Bottom: pts[0].Y}
	for _, p := range pts[1:] {
		bounds.Left = min(bounds.Left, p.X)
		bounds.Right = max(bounds.Right, p.X)
		bounds.Top = min(bounds.Top, p.Y)
		bounds.Bottom = max(bounds.Bottom, p.Y)
	}
	return pts, bounds
}
