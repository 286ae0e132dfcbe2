package dict

// englishWords is the canonical word table: 1024 lowercase English words in
// alphabetical order, one per line. The first three characters of every word
// are unique across the table; Load verifies both invariants before serving
// lookups. Editing this list is a wire-format change: any phrase produced
// with the old table becomes undecodable.
const englishWords = `abbey
ability
abort
abrasive
abyss
academy
aching
acidic
across
actress
adapt
addicted
adhesive
adjust
adrift
adult
aerial
afar
afield
afloat
afraid
after
agenda
agile
agony
agree
aided
ailments
airport
aisle
akin
alarms
alchemy
alerts
alibi
alley
almost
alpine
already
altitude
alumni
amaze
ambush
amidst
ammo
among
amply
anchor
android
angled
ankle
answer
antics
anxiety
anyone
apex
aphid
apology
apples
aptitude
aquarium
archer
ardent
argue
arises
around
arrow
artistic
asked
aspire
asylum
atlas
atrium
attire
auctions
audio
aunt
austere
avatar
avidly
awesome
awkward
axle
azure
badge
bagpipe
bakery
balding
banjo
baptism
basin
batch
baying
bazaar
because
been
begun
behind
bemused
bench
best
betray
beware
biased
bicycle
bifocals
biggest
billion
bimonthly
biplane
birth
bite
biweekly
blip
boat
bogeys
boil
bomb
bond
both
bounced
bows
boxes
brick
bruise
buckets
budget
bugs
building
bumper
bunch
bushes
butter
buzzer
cabin
cadets
cage
cajun
calamity
camp
capsule
cart
cat
cause
cedar
ceiling
cement
cent
chalk
chess
chlorine
chrome
cigar
cinema
cistern
citadel
claim
click
coal
cobra
code
coexist
cogs
coils
comb
cool
corrode
cost
cousin
cowl
cream
crook
crumb
cube
cucumber
cuffs
cult
custom
cycling
daft
dagger
damp
dapper
dash
dating
daytime
dealt
decay
dedicated
deftly
degrees
deity
dejected
demonstrate
dented
depth
desk
dewdrop
dice
difficult
digit
dime
dinner
diplomat
disco
diving
doctor
dodge
dogs
doing
domestic
donuts
dosage
dotted
dove
down
dreams
drink
drunk
dual
duckling
dude
duke
dummy
duplex
dusted
dwarf
dwelt
dying
dynamite
eagle
earth
eating
ebony
echo
eclipse
eden
edgy
educated
effort
egg
either
eject
elbow
eldest
elite
elope
eluded
emails
emerge
emit
empty
enamel
enigma
enjoy
enmity
enough
ensign
entrance
epoxy
equip
erosion
error
espionage
essential
etched
eternal
etiquette
evening
exact
excess
exit
expire
extra
fable
factual
fainted
fall
fanfare
fated
fawns
faxed
feast
february
feel
feline
ferry
festival
fever
fewest
fibula
fictional
fierce
fight
finding
firm
fitting
five
fizzle
fleet
flying
foamy
foes
foggy
folding
fonts
fossil
fowls
foxes
framed
friendly
fruit
frying
fuel
fugitive
fuming
fungal
future
fuzzy
gadget
gags
galaxy
gambit
garlic
gasp
gauze
gave
gaze
gearbox
geek
gels
general
geometry
gesture
getting
ghetto
ghost
giddy
gifts
gills
ginger
girth
glass
gleeful
gnaw
gnome
goblet
goes
gone
gopher
governing
gown
guarded
guest
gulp
gumball
gusts
gutter
gypsy
gyrate
hacksaw
haggled
hamburger
hanging
hashing
hatchet
having
hawk
hazard
heavy
hedgehog
heels
height
hemlock
heron
hexagon
hickory
highway
hijack
hills
himself
hippo
hire
hitched
hive
hobby
hockey
hold
homes
hookup
hope
hotel
hounded
howls
hubcaps
huge
hull
hunter
hurried
huts
hybrid
hyper
icing
identity
idiom
idols
igloo
iguana
imagine
imbalance
impel
inactive
incur
industrial
inflamed
ingested
inkling
inline
innocent
inorganic
inroads
insult
inundate
invoke
ionic
irate
irony
irritate
isolated
issued
itches
items
itself
ivory
jackets
jaded
jailed
jamming
jargon
jaunt
jazz
jeans
jellyfish
jerseys
jester
jewels
jigsaw
jittery
jive
jockey
jogger
jokes
jolted
journal
joyous
judge
juggled
jump
junk
justice
juvenile
keep
kennel
kernels
kettle
kickoff
kidneys
king
kiosk
kitchens
kiwi
knee
knife
koala
kudos
lagoon
lakes
lamb
lapse
large
latch
lava
layout
lazy
lectures
ledge
left
legion
lemon
lending
lesson
letter
liar
licks
lied
lifestyle
likewise
lilac
linen
lion
liquid
listen
live
lizards
loaves
lobster
lodge
lofty
loincloth
long
lopped
losing
lottery
love
lower
lucky
luggage
lullaby
lumber
lurk
lush
lymph
lynx
macro
madness
mailed
major
malady
mammal
mapped
marvelous
match
maul
maximum
mayor
meant
mechanic
meeting
megabyte
memoir
menu
mesh
metro
mice
mighty
mime
mirror
misery
mixture
moat
mob
mohawk
moisture
moment
monopoly
morsel
mostly
mouth
movement
much
muddy
mugged
mullet
mundane
muppet
myriad
mystery
nabbing
nagged
naming
napkin
nasty
navy
needed
negative
neon
nephew
nestle
neutral
never
nexus
nibs
niece
nifty
nimbly
nineteen
noble
nodes
nomad
noodles
nostril
noted
novelty
nozzle
nucleus
nudged
nuisance
null
nuns
nurse
nylon
oaks
oasis
oatmeal
object
obliged
observe
obtains
occur
ocean
odds
odometer
often
oink
okay
olive
omega
omnibus
onboard
online
onslaught
onward
oozed
opened
opposite
opus
orange
orchid
orders
origin
ornament
oscar
ostrich
otter
ouch
ourselves
oust
oval
oven
owls
ownership
oxygen
oyster
pact
pager
pamphlet
paper
pastry
pause
pavements
payment
peaches
peculiar
pedantic
pegs
pelican
people
pepper
pests
petals
pheasants
phone
physics
piano
pierce
pigment
pimple
pinched
pipeline
pirate
pitched
pivot
pizza
playful
pliers
plotting
plywood
poaching
podcast
poetry
poker
ponies
pool
portents
possible
pouch
powder
present
pride
pruned
prying
public
puck
puffin
pulp
punch
puppy
push
putty
pylons
pyramid
quarrel
queen
quote
rabbits
radar
rafts
railway
rake
ramped
rapid
rash
rated
rays
react
rebel
reduce
reef
regular
reheat
rejoices
rekindle
remedy
renting
repent
reruns
return
revamp
rhino
rhythm
richly
ridges
rigid
rims
ripped
rising
river
roared
rockets
rodent
roles
romance
roped
roster
rounded
rover
royal
ruby
ruffled
ruined
ruling
runway
rural
ruthless
sack
saga
sailor
salads
sample
sapling
sarcasm
saucepan
saved
saxophone
sayings
scenic
school
scoop
scrub
seasons
second
seeded
segments
selfish
semifinal
september
sequence
session
setup
sewage
shackles
shipped
shrugged
shuffled
siblings
sickness
sieve
sifting
silk
simplest
sipped
siren
sitting
sixteen
skater
skew
skulls
skyscraper
sleepless
slid
slug
smash
smog
smuggled
sneeze
sniff
snug
soapy
soccer
soda
solved
someone
soothe
sorry
sowed
soya
speedy
spiders
splendid
sprig
spud
square
stacking
stick
stockpile
stunning
stylishly
succeed
suddenly
sugar
suitcase
sulking
sunken
superior
sushi
suture
swept
swiftly
swung
syllabus
syndicate
syringe
taboo
tacit
tagged
tail
talent
tamper
tapestry
tarnished
tattoo
tavern
tawny
teardrop
technical
teeming
tell
tender
tepid
terminal
testing
textbook
thaw
thirsty
thorn
thumbs
thwart
tidy
tiers
tilt
timber
tipsy
tirade
titans
toaster
today
toenail
toffee
toilet
token
tomorrow
tonic
torch
tossed
touchy
towel
toyed
trendy
tribal
truth
trying
tubes
tucks
tuesday
tufts
tuition
tulips
tunnel
turnip
tutor
tuxedo
twice
tycoon
tyrant
ugly
ultimate
umbrella
unafraid
unbending
under
unfit
unhappy
union
unknown
unlikely
unnoticed
unopened
unquoted
unrest
untold
unveiled
unwind
upbeat
upcoming
upgrade
uphill
upload
upon
upright
upstairs
upwards
urban
urgent
usage
usher
using
utensils
utility
utopia
uttered
vague
vain
vampire
vane
vary
vastness
vaults
vector
vegan
vehicle
venomous
verification
veteran
vexed
vibrate
video
viewpoint
viking
village
violin
vipers
visited
vitals
vixen
vocal
voice
volcano
vouchers
vowels
vulture
wade
wagtail
waist
wallets
wanted
washing
water
waxed
wealthy
wedge
weekday
welders
went
were
western
whale
when
whole
width
wield
wiggle
wildly
wipeout
wiring
withdrawn
wives
wobbly
woes
wolf
womanly
woozy
worry
woven
wrap
wrong
yacht
yahoo
yard
yawning
yellow
yesterday
yields
yin
yoga
younger
zapped
zeal
zebra
zesty
zigzags
zippers
zodiac
zones
zoom`
