package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"image-compare/compare"
	"image-compare/player"
)

var Cmd = &cli.Command{
	Name:      "image-compare",
	Usage:     "Alternate two images and export the comparison as a looping GIF",
	ArgsUsage: "IMAGE_A IMAGE_B",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Usage:   "Number of A/B alternation cycles",
			Aliases: []string{"n"},
			Value:   10,
		},
		&cli.FloatFlag{
			Name:    "interval",
			Usage:   "Seconds each frame is shown",
			Aliases: []string{"i"},
			Value:   0.5,
		},
		&cli.StringFlag{
			Name:    "output",
			Usage:   "Directory the GIF is written to",
			Aliases: []string{"o"},
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "name",
			Usage: "Output file name",
			Value: "compare.gif",
		},
		&cli.BoolFlag{
			Name:    "preview",
			Usage:   "Play the comparison in the terminal before exporting",
			Aliases: []string{"p"},
		},
		&cli.StringFlag{
			Name:  "palette",
			Usage: "Shared palette derivation: mediancut or kmeans",
			Value: "mediancut",
		},
	},
	Action: action,
}

func action(ctx context.Context, c *cli.Command) error {
	args := c.Args().Slice()
	if len(args) == 0 {
		cli.ShowAppHelpAndExit(c, 0)
	}
	if len(args) != 2 {
		return fmt.Errorf("expected two image paths, got %d", len(args))
	}

	count := int(c.Int("count"))
	interval := c.Float("interval")
	if count < 1 || count > 999 {
		return fmt.Errorf("count must be between 1 and 999, got %d", count)
	}
	if interval < 0.1 || interval > 10.0 {
		return fmt.Errorf("interval must be between 0.1 and 10.0 seconds, got %g", interval)
	}
	delay := time.Duration(interval * float64(time.Second))

	var paletteFn compare.PaletteFunc
	switch name := c.String("palette"); name {
	case "mediancut":
		paletteFn = compare.MedianCutPalette
	case "kmeans":
		paletteFn = compare.KMeansPalette
	default:
		return fmt.Errorf("unknown palette %q (want mediancut or kmeans)", name)
	}

	imgA, err := compare.Load(args[0])
	if err != nil {
		logrus.WithError(err).Error("loading image A failed")
		return err
	}
	imgB, err := compare.Load(args[1])
	if err != nil {
		logrus.WithError(err).Error("loading image B failed")
		return err
	}
	logrus.Infof("loaded %s and %s", filepath.Base(args[0]), filepath.Base(args[1]))

	sess := player.NewSession(count, delay)
	sess.OutputDir = c.String("output")

	if c.Bool("preview") {
		err := player.New(sess).Run(ctx, func(side player.Side) {
			logrus.Infof("showing image %s", side)
		})
		if err != nil {
			return err
		}
	}

	g, err := compare.Compose(imgA, imgB, compare.Options{
		Count:   count,
		Delay:   delay,
		Palette: paletteFn,
	})
	if err != nil {
		logrus.WithError(err).Error("composing failed")
		return err
	}

	outPath := filepath.Join(sess.OutputDir, c.String("name"))
	if err := compare.Save(g, outPath); err != nil {
		logrus.WithError(err).Error("saving failed")
		return err
	}
	logrus.Infof("saved %d frames to %s", len(g.Image), outPath)
	return nil
}
