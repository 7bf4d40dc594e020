package container

// Options configures the server and consumer. Every field is also settable
// through a SERVICE_ prefixed environment variable.
type Options struct {
	Port         int    `default:"8888"                                                     help:"Port to listen on"                                          short:"p"`
	Storage      string `default:"sqlite"                                                   help:"Snapshot storage: sqlite, file, redis, postgres or memory"  short:"s"`
	SQLitePath   string `default:"campaign-links.db"                                        help:"SQLite database file"                                       name:"sqlite-path"`
	FileDir      string `default:"data"                                                     help:"Directory for file storage"`
	RedisAddr    string `default:"localhost:6379"                                           help:"Redis server address"                                       short:"r"`
	PostgresURL  string `default:"postgres://localhost:5432/campaign_links?sslmode=disable" help:"PostgreSQL connection URL"                                  name:"postgres-url"`
	CacheTTL     int    `default:"0"                                                        help:"Cache snapshots in Redis for this many seconds; 0 disables" name:"cache-ttl"`
	ProviderURL  string `default:"https://api.rebrandly.com/v1"                             help:"Short-link provider API base URL"                           name:"provider-url"`
	APIKey       string `default:""                                                         help:"Provider API key used until one is saved"                   name:"api-key"`
	Domain       string `default:""                                                         help:"Custom short-link domain used until one is saved"`
	HistoryLimit int    `default:"10"                                                       help:"Number of generated links kept in history"`
	Events       string `default:"gochannel"                                                help:"Event transport: gochannel or redis"                        short:"e"`
	Analytics    string `default:"stats"                                                    help:"Analytics sink: stats or log"`
	LogFormat    string `default:"console"                                                  help:"Log format: console or json"`
}
