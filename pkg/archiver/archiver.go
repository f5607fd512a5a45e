package archiver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/database"
	"github.com/travigo/ferrybus/pkg/planner"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const dateFormat = "2006-01-02"

var NotConnectedError = errors.New("archive requires FERRYBUS_MONGODB_CONNECTION")

// ArchivedBoard is a snapshot of the served ferries for one origin and destination on one day
type ArchivedBoard struct {
	PrimaryIdentifier string

	OriginStop      *ctdf.Stop
	DestinationStop *ctdf.Stop

	Date string

	Ferries          []*ctdf.FerryBoard
	RejectedJourneys int

	CreationDateTime     time.Time
	ModificationDateTime time.Time
}

func NewArchivedBoard(result *planner.Result, now time.Time) *ArchivedBoard {
	departureTime := result.DepartureTime
	if departureTime.IsZero() {
		departureTime = now
	}

	location := result.Location
	if location == nil {
		location = time.UTC
	}
	date := departureTime.In(location).Format(dateFormat)

	return &ArchivedBoard{
		PrimaryIdentifier: fmt.Sprintf("%s:%s:%s", result.OriginStop.PrimaryIdentifier, result.DestinationStop.PrimaryIdentifier, date),
		OriginStop:        result.OriginStop,
		DestinationStop:   result.DestinationStop,
		Date:              date,

		Ferries:          result.Board.Served(),
		RejectedJourneys: len(result.Board.Rejected),

		CreationDateTime:     now,
		ModificationDateTime: now,
	}
}

type Archiver struct {
	Collection *mongo.Collection
}

// New uses the ferry_boards collection of the global MongoDB instance
func New() (*Archiver, error) {
	if !database.Connected() {
		return nil, NotConnectedError
	}

	return &Archiver{
		Collection: database.GetCollection(database.FerryBoardsCollection),
	}, nil
}

// Archive upserts the board, replacing any earlier snapshot for the same day
func (a *Archiver) Archive(ctx context.Context, result *planner.Result) (*ArchivedBoard, error) {
	archivedBoard := NewArchivedBoard(result, time.Now())

	filter := bson.M{"primaryidentifier": archivedBoard.PrimaryIdentifier}
	update := bson.M{
		"$set": bson.M{
			"originstop":           archivedBoard.OriginStop,
			"destinationstop":      archivedBoard.DestinationStop,
			"date":                 archivedBoard.Date,
			"ferries":              archivedBoard.Ferries,
			"rejectedjourneys":     archivedBoard.RejectedJourneys,
			"modificationdatetime": archivedBoard.ModificationDateTime,
		},
		"$setOnInsert": bson.M{
			"creationdatetime": archivedBoard.CreationDateTime,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := a.Collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, err
	}

	log.Info().
		Str("id", archivedBoard.PrimaryIdentifier).
		Int("ferries", len(archivedBoard.Ferries)).
		Msg("Archived ferry board")

	return archivedBoard, nil
}
