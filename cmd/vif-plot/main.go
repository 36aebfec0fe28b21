// Command vif-plot renders the overall velocity trace of one or more
// VIF capture files as a PNG time series.
package main

import (
	"flag"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vibra-data/vif2csv/internal/vif"
)

// velocitySink collects plottable velocity samples from the converter.
// Abnormal records carry no velocity and are left out of the trace.
type velocitySink struct {
	points plotter.XYs
}

func (s *velocitySink) WriteRow(row *vif.Row) error {
	if row.VelocityOK {
		s.points = append(s.points, plotter.XY{X: float64(row.Stamp.Unix()), Y: row.Velocity})
	}
	return nil
}

func main() {
	var output string
	var title string

	flag.StringVar(&output, "o", "velocity.png", "output image file")
	flag.StringVar(&title, "title", "Overall velocity", "plot title")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no input files")
	}

	sink := &velocitySink{}
	conv := vif.NewConverter(vif.DefaultOptions(), sink)
	for _, name := range flag.Args() {
		if _, err := conv.ConvertFile(name); err != nil {
			log.Fatalf("convert %s: %v", name, err)
		}
	}
	if len(sink.points) == 0 {
		log.Fatal("no plottable records")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Velocity (mm/s)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "01-02 15:04"}
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(sink.points)
	if err != nil {
		log.Fatalf("build line: %v", err)
	}
	line.Width = vg.Points(1)
	p.Add(line)

	if err := p.Save(10*vg.Inch, 4*vg.Inch, output); err != nil {
		log.Fatalf("save plot: %v", err)
	}
	log.Printf("wrote %s with %d samples", output, len(sink.points))
}
