package help

const ColdstartYAML = `# jobs-finder Quick Start

pipeline:
  - "scrape: fetch the hiring-without-whiteboards list into data/companies.json, tagged with jobType and region"
  - "search: match companies by city, state, country or remote/hybrid/on-site"
  - "match: list companies where a resume's experience section says you worked"
  - "cities + ner-data: build the city datasets and NER training rows"

commands:
  scrape: |
    jobs-finder scrape
    jobs-finder scrape --force-fetch --output data/companies.json

  search: |
    jobs-finder search Kentucky
    jobs-finder search "united states" --pretty
    jobs-finder search remote --no-history

  parse: |
    jobs-finder parse "Berlin, Germany (hybrid)"

  match: |
    jobs-finder match --resume resume.txt
    jobs-finder match --text "EXPERIENCE Louisville, Kentucky" --include-remote --pretty

  cities: |
    jobs-finder cities filter --input data/worldcities.csv --regions Kentucky --regions Ohio
    jobs-finder cities remote
    jobs-finder cities import

  ner_data: |
    jobs-finder ner-data tokens --output data/ner_training_data.csv
    jobs-finder ner-data sentences

  history: |
    jobs-finder db searches
    jobs-finder db search            # latest
    jobs-finder db search <id or 8 char prefix> --format yaml
    jobs-finder db scrapes
    jobs-finder db cities --region Kentucky

  mcp: |
    jobs-finder mcp                  # tools: search_by_location, parse_location, match_resume

ner_models:
  prose: "Pretrained English NER (default)"
  gazetteer: "Dictionary of countries, US states and cities_file rows (offline, deterministic)"

config:
  file: "jobs-finder.yaml (or --config), optional"
  env_prefix: "JOBSFINDER_ (also read from .env)"
  keys: [source_url, companies_file, cities_file, db_path, cache_dir, cache_ttl, ner_model, http_timeout, history]

search_rules:
  - "Whole-word match of the query in the location wins first"
  - "Otherwise the location is classified and the query must equal a country, city or custom term"
  - "Results keep the company list order, no ranking"

match_rules:
  - "Places come from the EXPERIENCE/WORK/EMPLOYMENT/HISTORY section up to EDUCATION/SKILLS/PROJECTS/ACHIEVEMENTS"
  - "Company locations split on / and ; and match when either side contains the other"
  - "Remote companies are added with --include-remote or when the resume mentions remote work"

error_behavior:
  - "Logs are JSON on stderr, --quiet keeps errors only"
  - "History write failures are warnings"
  - "Exit codes: 0=success, 1=error"
`
