package all

import (
	// Import all the ingest drivers so they register themselves
	_ "csv2sql/ingest/csv"
	_ "csv2sql/ingest/excel"
	_ "csv2sql/ingest/html"
)
