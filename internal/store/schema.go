package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/nasir-khan01/dsaprep/internal/problem"
)

// Table names.
const (
	tableProblems       = "problems"
	tableReviewEvents   = "review_events"
	tableMilestoneAcks  = "milestone_acks"
	tableListMeta       = "list_meta"
	tableGlobalSequence = "global_sequence"
)

// Problem columns, in scan order.
const (
	colID           = "id"
	colName         = "name"
	colURL          = "url"
	colCategory     = "category"
	colDifficulty   = "difficulty"
	colPattern      = "pattern"
	colList         = "source_list"
	colRepetition   = "repetition"
	colEaseFactor   = "ease_factor"
	colIntervalDays = "interval_days"
	colNextReview   = "next_review"
	colLastReviewed = "last_reviewed"
	colTimesSolved  = "times_solved"
	colCreatedAt    = "created_at"
)

var problemColumns = []string{
	colID, colName, colURL, colCategory, colDifficulty, colPattern, colList,
	colRepetition, colEaseFactor, colIntervalDays, colNextReview, colLastReviewed, colTimesSolved,
}

var (
	// ProblemsColumns holds the columns for the "problems" table.
	ProblemsColumns = []*schema.Column{
		{Name: colID, Type: field.TypeInt, Increment: true},
		{Name: colName, Type: field.TypeString},
		{Name: colURL, Type: field.TypeString, Default: ""},
		{Name: colCategory, Type: field.TypeString, Default: ""},
		{Name: colDifficulty, Type: field.TypeString, Default: "Medium"},
		{Name: colPattern, Type: field.TypeString, Default: problem.DefaultPattern},
		{Name: colList, Type: field.TypeString, Default: problem.DefaultList},
		{Name: colRepetition, Type: field.TypeInt, Default: 0},
		{Name: colEaseFactor, Type: field.TypeFloat64, Default: problem.DefaultEaseFactor},
		{Name: colIntervalDays, Type: field.TypeInt, Default: 0},
		{Name: colNextReview, Type: field.TypeString, Nullable: true},
		{Name: colLastReviewed, Type: field.TypeString, Nullable: true},
		{Name: colTimesSolved, Type: field.TypeInt, Default: 0},
		{Name: colCreatedAt, Type: field.TypeTime},
	}
	// ProblemsTable holds the schema information for the "problems" table.
	ProblemsTable = &schema.Table{
		Name:       tableProblems,
		Columns:    ProblemsColumns,
		PrimaryKey: []*schema.Column{ProblemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "problem_source_list_name",
				Unique:  true,
				Columns: []*schema.Column{ProblemsColumns[6], ProblemsColumns[1]},
			},
			{
				Name:    "problem_next_review",
				Unique:  false,
				Columns: []*schema.Column{ProblemsColumns[10]},
			},
		},
	}

	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "quality", Type: field.TypeInt},
		{Name: "reviewed_on", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "repetition", Type: field.TypeInt},
		{Name: "problem_id", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       tableReviewEvents,
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "review_events_problems_reviews",
				Columns:    []*schema.Column{ReviewEventsColumns[8]},
				RefColumns: []*schema.Column{ProblemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_problem_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[8]},
			},
			{
				Name:    "reviewevent_reviewed_on",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3]},
			},
		},
	}

	// MilestoneAcksColumns holds the columns for the "milestone_acks" table.
	MilestoneAcksColumns = []*schema.Column{
		{Name: "milestone_key", Type: field.TypeString},
		{Name: "acknowledged_at", Type: field.TypeTime},
	}
	// MilestoneAcksTable holds the schema information for the "milestone_acks" table.
	MilestoneAcksTable = &schema.Table{
		Name:       tableMilestoneAcks,
		Columns:    MilestoneAcksColumns,
		PrimaryKey: []*schema.Column{MilestoneAcksColumns[0]},
	}

	// ListMetaColumns holds the columns for the "list_meta" table.
	ListMetaColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString},
		{Name: "version", Type: field.TypeString, Default: ""},
		{Name: "source", Type: field.TypeString, Default: ""},
		{Name: "imported_at", Type: field.TypeTime},
	}
	// ListMetaTable holds the schema information for the "list_meta" table.
	ListMetaTable = &schema.Table{
		Name:       tableListMeta,
		Columns:    ListMetaColumns,
		PrimaryKey: []*schema.Column{ListMetaColumns[0]},
	}

	// GlobalSequenceColumns holds the columns for the "global_sequence" table.
	GlobalSequenceColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt},
		{Name: "next_val", Type: field.TypeInt64, Default: 1},
	}
	// GlobalSequenceTable holds the single counter row behind event sequences.
	GlobalSequenceTable = &schema.Table{
		Name:       tableGlobalSequence,
		Columns:    GlobalSequenceColumns,
		PrimaryKey: []*schema.Column{GlobalSequenceColumns[0]},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProblemsTable,
		ReviewEventsTable,
		MilestoneAcksTable,
		ListMetaTable,
		GlobalSequenceTable,
	}
)

func init() {
	ReviewEventsTable.ForeignKeys[0].RefTable = ProblemsTable
}
