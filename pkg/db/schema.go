package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Scrapes: one row per fetch of the company list
CREATE TABLE IF NOT EXISTS scrapes (
    scrape_id TEXT PRIMARY KEY,
    source_url TEXT NOT NULL,
    page_title TEXT,
    content_hash TEXT NOT NULL,
    company_count INTEGER NOT NULL,
    from_cache BOOLEAN DEFAULT 0,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scrapes_created ON scrapes(created_at DESC);

-- Searches: one row per location query
CREATE TABLE IF NOT EXISTS searches (
    search_id TEXT PRIMARY KEY,
    query TEXT NOT NULL,
    source_file TEXT,
    ner_model TEXT,
    company_count INTEGER NOT NULL,
    match_count INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_searches_created ON searches(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_searches_query ON searches(query);

-- Search matches: the result list of a search, in output order
CREATE TABLE IF NOT EXISTS search_matches (
    match_id INTEGER PRIMARY KEY AUTOINCREMENT,
    search_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    company TEXT NOT NULL,
    location TEXT,
    match_kind TEXT NOT NULL,
    FOREIGN KEY (search_id) REFERENCES searches(search_id) ON DELETE CASCADE,
    UNIQUE(search_id, position)
);

CREATE INDEX IF NOT EXISTS idx_search_matches_search ON search_matches(search_id);

-- Cities: imported city datasets, keyed by dataset id
CREATE TABLE IF NOT EXISTS cities (
    id TEXT PRIMARY KEY,
    city TEXT NOT NULL,
    city_ascii TEXT,
    lat REAL,
    lng REAL,
    country TEXT,
    iso2 TEXT,
    iso3 TEXT,
    admin_name TEXT,
    capital TEXT,
    population REAL,
    geohash TEXT,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cities_admin ON cities(admin_name);
CREATE INDEX IF NOT EXISTS idx_cities_geohash ON cities(geohash);
`
