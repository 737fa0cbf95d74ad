package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"text/tabwriter"

	"wavespec/internal/config"
	"wavespec/internal/editor"
	"wavespec/internal/waves"
)

type component struct {
	Name       string  `json:"name"`
	Wavelength float64 `json:"wavelength"`
	Period     float64 `json:"period"`
	Amplitude  float64 `json:"amplitude"`
	AngleDeg   float64 `json:"angleDeg"`
	Phase      float64 `json:"phase"`
	LOD        int     `json:"lod"`
	Band       string  `json:"band"`
}

type pass struct {
	WindDirectionDeg float64     `json:"windDirectionDeg"`
	Choppiness       float64     `json:"choppiness"`
	Components       []component `json:"components"`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wavegen: ")

	flags := config.BindFlags(flag.CommandLine)
	format := flag.String("format", "table", "output format: table or json")
	save := flag.String("save", "", "save the resulting settings as this profile")
	flag.Parse()

	s, loader, err := flags.Setup()
	if err != nil {
		log.Fatal(err)
	}

	model := editor.NewModel(s)
	comps := model.Components()
	rows := make([]component, comps.Len())
	binner := model.Binner()
	for i := range rows {
		rows[i] = component{
			Name:       comps.Label(i),
			Wavelength: comps.Wavelengths[i],
			Period:     waves.Period(comps.Wavelengths[i]),
			Amplitude:  comps.Amplitudes[i],
			AngleDeg:   comps.AnglesRad[i] * 180 / math.Pi,
			Phase:      comps.Phases[i],
			LOD:        int(comps.LODs[i]),
			Band:       binner.Label(comps.LODs[i]),
		}
	}

	switch *format {
	case "table":
		err = writeTable(os.Stdout, model, rows)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(pass{
			WindDirectionDeg: comps.WindDirectionDeg,
			Choppiness:       comps.Choppiness,
			Components:       rows,
		})
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *save != "" {
		if err := model.Save(loader, *save); err != nil {
			log.Fatal(err)
		}
		log.Printf("saved %s", loader.Path(*save))
	}
}

func writeTable(out io.Writer, model *editor.Model, rows []component) error {
	fmt.Fprintln(out, model.StatusLine())
	for _, line := range model.BandSummary() {
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "octave\twavelength (m)\tperiod (s)\tamplitude (m)\tangle (deg)\tphase\tband\t")
	for i, r := range rows {
		fmt.Fprintf(tw, "%d\t%.3f\t%.2f\t%.4f\t%.1f\t%.3f\t%s\t\n",
			i, r.Wavelength, r.Period, r.Amplitude, r.AngleDeg, r.Phase, r.Band)
	}
	return tw.Flush()
}
