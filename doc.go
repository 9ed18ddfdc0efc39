// Package growthgrid lays out the slots of vertical-farm trays as
// growth-status matrices for the container dashboard.
//
// What is in here?
//
//	growth/          — CellStatus, Matrix and the Generate/Allocate partition
//	tray/            — tray layouts from YAML, concurrent batch generation
//	cmd/growthgrid/  — CLI printing matrices as text or JSON
//
// Quick example:
//
//	m := growth.Generate(4, 4, 16)   // 15% alert by default
//	fmt.Println(m)
//
//	####
//	####
//	####
//	##!!
//
// Cells are filled row-major: healthy, then alert, then empty. Generate never
// fails: oversized occupied counts are clamped to the grid and negative inputs
// count as zero.
//
//	go get github.com/katalvlaran/growthgrid
package growthgrid
