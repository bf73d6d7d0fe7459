package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/ManHinnn0509/owmidiconverter/convert"
	"github.com/ManHinnn0509/owmidiconverter/db"
	"github.com/ManHinnn0509/owmidiconverter/midi"
	"github.com/ManHinnn0509/owmidiconverter/model"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions over HTTP",
	Long:  `Serves conversions over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func parseFormOptions(r *http.Request) convert.Options {
	opts := convert.DefaultOptions()
	if v := r.FormValue("start"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			opts.StartTime = f
		}
	}
	if v := r.FormValue("voices"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			opts.Voices = n
		}
	}
	if v := r.FormValue("raw"); v == "1" || v == "true" {
		opts.Compress = false
	}
	return opts
}

// HandleConvert converts an uploaded MIDI file and responds with the rule
// text plus conversion counters.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	f, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "expected a midi file upload under 'file'")
		return
	}
	defer f.Close()

	dat, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload: "+err.Error())
		return
	}
	parsed, err := midi.Read(bytes.NewReader(dat))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Convert normalizes the options itself so field fallbacks surface
	// as warnings in the response
	opts := parseFormOptions(r)
	res := convert.Convert(midi.BuildTimeline(parsed), opts)
	id := uuid.New().String()

	if db.Enabled() {
		normalized, _ := convert.Normalize(opts)
		rec := model.ConversionRecord{
			Id:         id,
			Filename:   header.Filename,
			Voices:     normalized.Voices,
			Transposed: res.TransposedNotes,
			Skipped:    res.SkippedNotes,
			StopTime:   res.StopTime,
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := db.PutConversionRecord(rec); err != nil {
			log.Printf("could not record conversion %v: %v", id, err)
		}
	}

	json.NewEncoder(w).Encode(model.ConvertResponse{
		Id:              id,
		Rules:           res.Rules,
		TransposedNotes: res.TransposedNotes,
		SkippedNotes:    res.SkippedNotes,
		Duration:        res.Duration,
		StopTime:        res.StopTime,
		Warnings:        res.Warnings,
		Errors:          res.Errors,
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")
	handler := cors.Default().Handler(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("listening on :%v\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
